package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err = json.Unmarshal(raw, &decoded); err != nil {
			fmt.Println(err)
			return string(raw)
		}
		in = decoded
	}

	// jsoniter só aceita espaços na indentação
	buffer, err = json.MarshalIndent(in, "", "  ")
	if err != nil {
		fmt.Println(err)
	}

	return string(buffer)
}
