package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into req and runs the echo validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// currentUserID returns the identity attached by the access guard.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// formImage reads one multipart file field. An absent field yields nil without error.
func formImage(c echo.Context, field string) (*entity.ImageUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart body")
	}

	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) (*entity.ImageUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", header.Filename)
	}

	return &entity.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Filename:    header.Filename,
	}, nil
}
