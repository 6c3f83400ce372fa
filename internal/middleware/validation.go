package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type normalizer interface {
	Normalize()
}

// BindForm decodes the posted form into obj, normalizes it when supported, then validates it
// with gin's validator. The returned error is suitable for dto.NewFormErrors.
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.Request.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}

	if err := binding.MapFormWithTag(obj, c.Request.PostForm, "form"); err != nil {
		return err
	}

	if n, ok := obj.(normalizer); ok {
		n.Normalize()
	}

	return binding.Validator.ValidateStruct(obj)
}
