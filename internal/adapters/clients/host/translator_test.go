package host_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/clients/host"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
)

func TestFormula(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "6d10", host.Formula(6, 10))
}

func TestToRawRoll(t *testing.T) {
	t.Parallel()

	inactive := false

	tests := []struct {
		name    string
		dto     host.RollResponseDTO
		count   int
		want    []int
		wantErr bool
	}{
		{
			name:  "plain",
			dto:   host.RollResponseDTO{Terms: []host.DiceTermDTO{{Faces: 10, Results: results(3, 9)}}},
			count: 2,
			want:  []int{3, 9},
		},
		{
			name: "inactive dice skipped",
			dto: host.RollResponseDTO{Terms: []host.DiceTermDTO{{Faces: 10, Results: []host.DieResultDTO{
				{Result: 1, Active: &inactive}, {Result: 7}, {Result: 7},
			}}}},
			count: 2,
			want:  []int{7, 7},
		},
		{name: "no terms", dto: host.RollResponseDTO{Formula: "2d10"}, count: 2, wantErr: true},
		{
			name:    "wrong faces",
			dto:     host.RollResponseDTO{Terms: []host.DiceTermDTO{{Faces: 6, Results: results(3)}}},
			count:   1,
			wantErr: true,
		},
		{
			name:    "out of range",
			dto:     host.RollResponseDTO{Terms: []host.DiceTermDTO{{Faces: 10, Results: results(11)}}},
			count:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := host.ToRawRoll(tt.dto, tt.count, 10)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *http.Response
		want error
	}{
		{name: "not found", resp: response(http.StatusNotFound, "", ""), want: domain.ErrNotFound},
		{name: "bad request", resp: response(http.StatusBadRequest, "", ""), want: domain.ErrValidation},
		{
			name: "field errors",
			resp: response(http.StatusUnprocessableEntity, "application/problem+json",
				`{"errors":[{"location":"body.formula","message":"is invalid"}]}`),
			want: domain.ErrValidation,
		},
		{name: "forbidden", resp: response(http.StatusForbidden, "", ""), want: domain.ErrUnavailable},
		{name: "throttled", resp: response(http.StatusTooManyRequests, "", ""), want: domain.ErrUnavailable},
		{name: "server error", resp: response(http.StatusBadGateway, "", ""), want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, host.TranslateHTTPError(tt.resp), tt.want)
		})
	}
}

func TestTranslateHTTPError_FieldNames(t *testing.T) {
	t.Parallel()

	err := host.TranslateHTTPError(response(http.StatusBadRequest, "application/problem+json",
		`{"errors":[{"location":"body.content","message":"is required"}]}`))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"content": "is required"}, verr.Fields)
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := host.TranslateHTTPError(response(http.StatusTeapot, "", ""))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "418")
}
