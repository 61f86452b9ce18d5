package req

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodySize = 1 << 20

// Decode читает JSON тело запроса в T. Неизвестные поля - ошибка
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty body")
	}
	defer body.Close()

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// DecodeOptional как Decode, но пустое тело даёт нулевой T
func DecodeOptional[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil || body == http.NoBody {
		return payload, nil
	}
	payload, err := Decode[T](body)
	if errors.Is(err, io.EOF) {
		return payload, nil
	}
	return payload, err
}
