package utils

import (
	"bytes"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// PrettyJson serializa o valor com indentação, para logs de depuração.
// Entradas []byte são tratadas como JSON já serializado
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("utils: failed to marshal value for pretty print")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Debug("utils: failed to indent json")
		return string(buffer)
	}

	return out.String()
}
