package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientDeleteStatusDeleted(t *testing.T) {
	code, msg := clientDeleteStatus(1, 0)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cliente eliminado correctamente", msg)
}

// Nothing deleted and no row left: the client never existed.
func TestClientDeleteStatusMissingClient(t *testing.T) {
	code, msg := clientDeleteStatus(0, 0)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Cliente no encontrado", msg)
}

// Nothing deleted but the row is still there: the conditional delete was
// blocked by associated jobs.
func TestClientDeleteStatusClientWithJobs(t *testing.T) {
	code, msg := clientDeleteStatus(0, 1)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No se puede eliminar un cliente con trabajos asociados", msg)
}
