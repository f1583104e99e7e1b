package pkg

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const maxRequestBody = 1 << 20

// RequestData reads a flat JSON object or a form body into string values.
// JSON numbers and booleans are kept in their literal form, nested values are rejected.
func RequestData(r *http.Request) (map[string]string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		raw := map[string]any{}
		if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("unmarshal json params: %w", err)
		}
		data := make(map[string]string, len(raw))
		for key, value := range raw {
			switch v := value.(type) {
			case nil:
				data[key] = ""
			case string:
				data[key] = v
			case float64:
				data[key] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				data[key] = strconv.FormatBool(v)
			default:
				return nil, fmt.Errorf("param %s: unsupported value %T", key, value)
			}
		}
		return data, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	data := make(map[string]string, len(r.Form))
	for key := range r.Form {
		data[key] = r.Form.Get(key)
	}
	return data, nil
}
