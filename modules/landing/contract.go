package landing

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/pkg/qrcode"
)

const contractQRSize = 256

// ContractService serves the QR code of the collection contract.
type ContractService struct {
	errorHandler handler.ErrorHandler[handler.Context]
	qr           func() ([]byte, error)
}

// NewContractService renders the QR code of address once, on first request.
func NewContractService(address string, errorHandler handler.ErrorHandler[handler.Context]) *ContractService {
	return &ContractService{
		errorHandler: errorHandler,
		qr: sync.OnceValues(func() ([]byte, error) {
			return qrcode.Contract(address, contractQRSize)
		}),
	}
}

func (s *ContractService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/qr.png", handler.Wrap(s.qrCode,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *ContractService) qrCode(_ handler.Context, _ struct{}) handler.Response {
	png, err := s.qr()
	if err != nil {
		if errors.Is(err, qrcode.ErrInvalidAddress) || errors.Is(err, qrcode.ErrEmptyContent) {
			return errorResponse{handler.ErrNotFound}
		}
		return errorResponse{err}
	}
	return pngResponse(png)
}

type pngResponse []byte

func (p pngResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(p)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, err := w.Write(p)
	return err
}

// errorResponse hands err to the error handler of the route.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }
