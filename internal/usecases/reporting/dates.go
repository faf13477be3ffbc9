package reporting

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateParts são as dimensões derivadas de date_start
type DateParts struct {
	ISOWeek string
	Month   string
	Year    string
}

// ISOWeek devolve a semana ISO-8601 com dois dígitos. A data é deslocada para a
// quinta-feira da sua semana e a semana é contada a partir de 1º de janeiro do ano
// dessa quinta-feira.
func ISOWeek(t time.Time) string {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d = d.AddDate(0, 0, 4-weekday)

	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := d.Sub(yearStart).Hours() / 24
	week := int(math.Ceil((days + 1) / 7))

	return fmt.Sprintf("%02d", week)
}

// ParseDate aceita apenas o formato YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

// ParseDateParts calcula semana, mês (em inglês) e ano. Datas inválidas devolvem campos
// vazios e ok=false.
func ParseDateParts(value string) (DateParts, bool) {
	t, err := ParseDate(value)
	if err != nil {
		return DateParts{}, false
	}

	return DateParts{
		ISOWeek: ISOWeek(t),
		Month:   t.Month().String(),
		Year:    strconv.Itoa(t.Year()),
	}, true
}
