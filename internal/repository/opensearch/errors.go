package opensearch

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/opensearch-project/opensearch-go/opensearchapi"
	"github.com/tidwall/gjson"
)

const maxErrorBodySize = 4096

type ResponseError struct {
	Operation  string
	StatusCode int
	ErrorType  string
	Body       string
}

func newResponseError(operation string, res *opensearchapi.Response) *ResponseError {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	return &ResponseError{
		Operation:  operation,
		StatusCode: res.StatusCode,
		ErrorType:  gjson.GetBytes(body, "error.type").String(),
		Body:       string(body),
	}
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("opensearch %s failed with status %d: %s", e.Operation, e.StatusCode, e.Body)
}

func IsNotFound(err error) bool {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.StatusCode == http.StatusNotFound
	}
	return false
}
