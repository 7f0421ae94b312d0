package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"news-api/internal/domain"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Source
		wantErr bool
	}{
		{name: "exact", input: "chile", want: domain.SourceChile},
		{name: "uppercase", input: "CHILE", want: domain.SourceChile},
		{name: "padded", input: "  tecnologia ", want: domain.SourceTecnologia},
		{name: "unknown", input: "peru", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSource(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownSource)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEverySourceHasFeedURL(t *testing.T) {
	sources := domain.Sources()
	require.Len(t, sources, 4)

	for _, source := range sources {
		require.True(t, source.Valid())
		require.NotEmpty(t, source.FeedURL(), "source %q has no feed URL", source)
	}
}

func TestInvalidSourceHasNoFeedURL(t *testing.T) {
	require.Empty(t, domain.Source("peru").FeedURL())
	require.False(t, domain.Source("peru").Valid())
}
