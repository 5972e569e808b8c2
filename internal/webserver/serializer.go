package webserver

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// JSONSerializer swaps echo's default encoder for json-iterator.
type JSONSerializer struct {
	api jsoniter.API
}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

func (d *JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := d.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (d *JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := d.api.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid json body: %v", err)).SetInternal(err)
	}
	return nil
}
