package calculocomissao

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListByFaixaExigeParametro(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodGet, "/calculos", nil)
	rr := httptest.NewRecorder()
	h.ListByFaixa(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "faixa")
}
