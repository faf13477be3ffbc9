package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"golang.org/x/time/rate"
)

// graphPage é o envelope comum das respostas de listagem do Graph API.
// Data fica como RawMessage para diferenciar um campo ausente de uma lista vazia.
type graphPage struct {
	Data   jsoniter.RawMessage      `json:"data"`
	Paging *metadomain.Paging       `json:"paging,omitempty"`
	Error  *metadomain.ErrorDetails `json:"error,omitempty"`
}

// FetchAllPages percorre o cursor paging.next a partir de firstURL e concatena o campo
// data de todas as páginas, na ordem em que chegaram. Não há retry: a primeira falha
// interrompe a busca inteira.
func FetchAllPages[T any](ctx context.Context, httpClient *http.Client, limiter *rate.Limiter, firstURL string) ([]T, error) {
	records := make([]T, 0)
	seen := make(map[string]bool)

	next := firstURL
	for page := 1; next != ""; page++ {
		if seen[next] {
			logrus.WithField("url", redactURL(next)).Warn("meta: cursor de paginação repetido, encerrando busca")
			break
		}
		seen[next] = true

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("meta: aguardando limite de requisições: %w", err)
			}
		}

		items, nextURL, err := fetchPage[T](ctx, httpClient, next)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"url":   redactURL(next),
				"page":  page,
				"error": err.Error(),
			}).Error("meta: failed to fetch page")
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"url":     redactURL(next),
			"page":    page,
			"records": len(items),
		}).Debug("meta: page fetched")

		records = append(records, items...)
		next = nextURL
	}

	return records, nil
}

func fetchPage[T any](ctx context.Context, httpClient *http.Client, pageURL string) ([]T, string, error) {
	body, status, err := doGet(ctx, httpClient, pageURL)
	if err != nil {
		return nil, "", err
	}

	var page graphPage
	decodeErr := json.Unmarshal(body, &page)

	if err := checkResponse(status, decodeErr, page.Error); err != nil {
		return nil, "", err
	}

	if len(page.Data) == 0 || string(page.Data) == "null" {
		return nil, "", &FetchError{Status: status, Message: "resposta sem campo data"}
	}

	var items []T
	if err := json.Unmarshal(page.Data, &items); err != nil {
		return nil, "", &FetchError{Status: status, Message: fmt.Sprintf("erro ao decodificar campo data: %v", err)}
	}

	next := ""
	if page.Paging != nil {
		next = page.Paging.Next
	}

	return items, next, nil
}

// getObject busca um objeto único (ex: /me), com o mesmo tratamento de erro da paginação
func getObject(ctx context.Context, httpClient *http.Client, limiter *rate.Limiter, objectURL string, out any) error {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("meta: aguardando limite de requisições: %w", err)
		}
	}

	body, status, err := doGet(ctx, httpClient, objectURL)
	if err != nil {
		return err
	}

	var envelope struct {
		Error *metadomain.ErrorDetails `json:"error,omitempty"`
	}
	decodeErr := json.Unmarshal(body, &envelope)

	if err := checkResponse(status, decodeErr, envelope.Error); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{Status: status, Message: fmt.Sprintf("erro ao decodificar resposta: %v", err)}
	}

	return nil
}

func doGet(ctx context.Context, httpClient *http.Client, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("meta: erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("meta: erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("meta: erro ao ler resposta: %w", err)
	}

	return body, resp.StatusCode, nil
}

// checkResponse converte status não-2xx e erros explícitos do Graph API em FetchError
func checkResponse(status int, decodeErr error, apiErr *metadomain.ErrorDetails) error {
	if status < 200 || status >= 300 {
		fetchErr := &FetchError{
			Status:  status,
			Message: fmt.Sprintf("falha ao buscar dados: status %d", status),
		}
		if decodeErr == nil && apiErr != nil && apiErr.Message != "" {
			fetchErr.Message = apiErr.Message
			fetchErr.Code = apiErr.Code
			fetchErr.TokenExpired = apiErr.IsTokenExpired()
		}
		return fetchErr
	}

	if decodeErr != nil {
		return &FetchError{Status: status, Message: fmt.Sprintf("resposta inválida: %v", decodeErr)}
	}

	if apiErr != nil && apiErr.Message != "" {
		return &FetchError{
			Status:       status,
			Message:      apiErr.Message,
			Code:         apiErr.Code,
			TokenExpired: apiErr.IsTokenExpired(),
		}
	}

	return nil
}
