package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson serializa o valor com indentação para logs de diagnóstico.
// Valores já serializados ([]byte) são apenas reindentados.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "\t"); err != nil {
			return string(raw)
		}

		return out.String()
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
