package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplates(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	otp, err := tm.Render("otp", TemplateData{OtpCode: "123456", TTLMinutes: 5})
	require.NoError(t, err)
	assert.Contains(t, otp, "123456")
	assert.Contains(t, otp, "5 minutes")

	approval, err := tm.Render("approval", TemplateData{
		PlateNumber: "ABC-123",
		SlotNumber:  "A-01",
		Location:    "north wing",
	})
	require.NoError(t, err)
	assert.Contains(t, approval, "ABC-123")
	assert.Contains(t, approval, "A-01")
	assert.Contains(t, approval, "north wing")

	rejection, err := tm.Render("rejection", TemplateData{
		PlateNumber: "ABC-123",
		Location:    "north wing",
		Reason:      "no capacity",
	})
	require.NoError(t, err)
	assert.Contains(t, rejection, "rejected")
	assert.Contains(t, rejection, "no capacity")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("missing", TemplateData{})
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	out, err := tm.Render("rejection", TemplateData{Reason: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
