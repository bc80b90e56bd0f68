package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "photo.jpg", cleanFilename("photo.jpg"))
	assert.Equal(t, "photo.jpg", cleanFilename("../../etc/photo.jpg"))
	assert.Equal(t, "myphoto1.png", cleanFilename("my photo~1.png"))
}

func TestValidateImageType(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.jpeg", "b.PNG", "c.gif"} {
		assert.NoError(t, ValidateImageType(name), name)
	}

	for _, name := range []string{"a.svg", "b.mp4", "c.exe", "noext"} {
		assert.Error(t, ValidateImageType(name), name)
	}
}
