package storeapi

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mintshop/mintshop/internal/catalog"
	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

func (h *Handlers) listItems(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	search := strings.TrimSpace(c.QueryParam("search"))

	products, err := h.catalog.List(c.Request().Context(), category, search)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return ok(c, products)
}

func (h *Handlers) getItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid item ID")
	}
	p, err := h.catalog.Get(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}
	return ok(c, p)
}

func (h *Handlers) createItem(c echo.Context) error {
	var payload validate.ProductPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Category = strings.TrimSpace(payload.Category)
	if err := validate.Struct(payload); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	p := domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		ImageBase64: payload.ImageBase64,
	}
	if err := h.catalog.Create(c.Request().Context(), &p); err != nil {
		return err
	}
	return created(c, echo.Map{
		"id":      p.ID,
		"name":    p.Name,
		"message": "Product created",
	})
}

// updateItem accepts either a full JSON replacement or a partial multipart
// form with an optional image file. Both encodings are normalized into one
// ProductUpdate value before reaching the store.
func (h *Handlers) updateItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid item ID")
	}

	var upd validate.ProductUpdate
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		var payload validate.ProductPayload
		if err := c.Bind(&payload); err != nil {
			return fail(c, http.StatusBadRequest, "unable to parse product")
		}
		payload.Name = strings.TrimSpace(payload.Name)
		payload.Category = strings.TrimSpace(payload.Category)
		if err := validate.Struct(payload); err != nil {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		upd = payload.Update()
	} else {
		upd, err = formProductUpdate(c)
		if err != nil {
			return err
		}
		if err := upd.Validate(); err != nil {
			return fail(c, http.StatusBadRequest, err.Error())
		}
	}

	_, err = h.catalog.Update(c.Request().Context(), id, upd)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}
	return ok(c, echo.Map{"message": "Product updated successfully"})
}

func (h *Handlers) deleteItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid item ID")
	}
	err = h.catalog.Delete(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}
	return ok(c, echo.Map{"message": "Item deleted"})
}

// formProductUpdate parses a form-encoded partial update: only fields
// present in the form are set, and a stored image is replaced only when a
// new file is uploaded.
func formProductUpdate(c echo.Context) (validate.ProductUpdate, error) {
	var upd validate.ProductUpdate

	params, err := c.FormParams()
	if err != nil {
		return upd, echo.NewHTTPError(http.StatusBadRequest, "unable to parse form data")
	}
	if vals, found := params["name"]; found && len(vals) > 0 {
		name := strings.TrimSpace(vals[0])
		upd.Name = &name
	}
	if vals, found := params["description"]; found && len(vals) > 0 {
		upd.Description = &vals[0]
	}
	if vals, found := params["price"]; found && len(vals) > 0 {
		price, perr := strconv.ParseFloat(vals[0], 64)
		if perr != nil {
			return upd, echo.NewHTTPError(http.StatusBadRequest, "price: must be a number")
		}
		upd.Price = &price
	}
	if vals, found := params["category"]; found && len(vals) > 0 {
		category := strings.TrimSpace(vals[0])
		upd.Category = &category
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil && fh.Filename != "" {
		dataURL, derr := fileToDataURL(fh)
		if derr != nil {
			return upd, echo.NewHTTPError(http.StatusBadRequest, "unable to read uploaded image")
		}
		upd.ImageBase64 = &dataURL
	}
	return upd, nil
}

// fileToDataURL encodes an uploaded file as a data-URL string
// (`data:<mime>;base64,<payload>`), matching the stored image format.
func fileToDataURL(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	ctype := fh.Header.Get("Content-Type")
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", ctype, base64.StdEncoding.EncodeToString(data)), nil
}
