package content

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Article()))

	tests := []struct {
		name   string
		mutate func(*Document)
		field  string
	}{
		{
			name:   "plain http link",
			mutate: func(d *Document) { d.Footer[1].URL = "http://vercel.com/templates" },
			field:  "URL",
		},
		{
			name:   "relative link",
			mutate: func(d *Document) { d.Footer[2].URL = "/learn" },
			field:  "URL",
		},
		{
			name:   "empty tip",
			mutate: func(d *Document) { d.Tips[1] = "" },
			field:  "Tips[1]",
		},
		{
			name:   "missing row",
			mutate: func(d *Document) { d.Table.Rows = d.Table.Rows[:3] },
			field:  "Rows",
		},
		{
			name:   "icon without leading slash",
			mutate: func(d *Document) { d.Footer[0].Icon.Path = "file.svg" },
			field:  "Path",
		},
		{
			name:   "zero sized icon",
			mutate: func(d *Document) { d.Footer[0].Icon.Width = 0 },
			field:  "Width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Article()
			tt.mutate(&doc)

			err := Validate(doc)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}
