package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("explicit DATABASE_DSN wins", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/seeds")
		t.Setenv("DB_HOST", "ignored")

		assert.Equal(t, "postgres://u:p@db:5432/seeds", FromEnv())
	})

	t.Run("built from parts with default port", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_USER", "postgres")
		t.Setenv("DB_PASS", "secret")
		t.Setenv("DB_NAME", "seeds")

		assert.Equal(t,
			"host=localhost port=5432 user=postgres password=secret dbname=seeds sslmode=disable",
			FromEnv())
	})

	t.Run("empty without host", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("DB_HOST", "")

		assert.Empty(t, FromEnv())
	})
}
