package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El formulario de edición precarga los cuatro campos con los valores
// actuales: guardar sin tocar un campo debe reenviar lo que ya había, no
// vaciarlo.
func TestEditFormFragment_PrecargaTodosLosCampos(t *testing.T) {
	html := editFormFragment("Ana Pérez", "universitario", "Fan del V60", "images/ana.png")

	assert.Contains(t, html, `id="editName" value="Ana Pérez"`)
	assert.Contains(t, html, `id="editEducation" value="universitario"`)
	assert.Contains(t, html, `>Fan del V60</textarea>`)
	assert.Contains(t, html, `id="editImage" value="images/ana.png"`)
}

// Los valores precargados pasan por el escape HTML como cualquier otro texto
// de usuario.
func TestEditFormFragment_EscapaLosValores(t *testing.T) {
	html := editFormFragment(`Ana "La Jefa"`, "x", "y", `img" onerror="alert(1)`)

	assert.NotContains(t, html, `"La Jefa"`)
	assert.Contains(t, html, `Ana &#34;La Jefa&#34;`)
	assert.NotContains(t, html, `onerror="alert(1)"`)
}
