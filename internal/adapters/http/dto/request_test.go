package dto_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	return verr.Fields
}

func TestChatMessageHookRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.ChatMessageHookRequest
		wantField string
	}{
		{name: "valid", req: dto.ChatMessageHookRequest{User: "gm", Content: "/ore 6"}},
		{name: "empty content is allowed", req: dto.ChatMessageHookRequest{User: "gm"}},
		{name: "missing user", req: dto.ChatMessageHookRequest{Content: "/ore 6"}, wantField: "user"},
		{name: "blank user", req: dto.ChatMessageHookRequest{User: " ", Content: "/ore 6"}, wantField: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields := fieldsOf(t, tt.req.Validate())
			if tt.wantField == "" {
				if fields != nil {
					t.Errorf("Validate() fields = %v, want nil", fields)
				}
				return
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("Validate() fields = %v, want %q", fields, tt.wantField)
			}
		})
	}
}

func TestChatMessageHookRequest_ToMessage(t *testing.T) {
	t.Parallel()

	req := dto.ChatMessageHookRequest{User: "alice", Speaker: "Hero", Content: "/ore 6d10"}
	want := chat.Message{User: "alice", Speaker: "Hero", Content: "/ore 6d10"}
	if diff := cmp.Diff(want, req.ToMessage()); diff != "" {
		t.Errorf("ToMessage() mismatch (-want +got):\n%s", diff)
	}
}

func TestRollRequest(t *testing.T) {
	t.Parallel()

	if err := (&dto.RollRequest{DiceCount: 1}).Validate(); err != nil {
		t.Errorf("Validate(1) = %v, want nil", err)
	}
	for _, n := range []int{0, -3} {
		fields := fieldsOf(t, (&dto.RollRequest{DiceCount: n}).Validate())
		if _, ok := fields["dice_count"]; !ok {
			t.Errorf("Validate(%d) fields = %v, want dice_count", n, fields)
		}
	}

	tests := []struct {
		name   string
		flavor *string
		want   *string
	}{
		{name: "nil stays nil", flavor: nil, want: nil},
		{name: "blank becomes nil", flavor: strPtr("   "), want: nil},
		{name: "trimmed", flavor: strPtr("  Dodge "), want: strPtr("Dodge")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := (&dto.RollRequest{DiceCount: 4, FlavorText: tt.flavor}).ToPort()
			want := ports.RollRequest{DiceCount: 4, FlavorText: tt.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ToPort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBatchRollRequest(t *testing.T) {
	t.Parallel()

	fields := fieldsOf(t, (&dto.BatchRollRequest{}).Validate())
	if _, ok := fields["rolls"]; !ok {
		t.Errorf("Validate(empty) fields = %v, want rolls", fields)
	}

	req := dto.BatchRollRequest{Rolls: []dto.RollRequest{{DiceCount: 0}, {DiceCount: 5, FlavorText: strPtr("Parry")}}}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil; entries fail individually", err)
	}

	want := []ports.RollRequest{{DiceCount: 0}, {DiceCount: 5, FlavorText: strPtr("Parry")}}
	if diff := cmp.Diff(want, req.ToPort()); diff != "" {
		t.Errorf("ToPort() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.ParseRequest
		wantFields []string
	}{
		{name: "valid", req: dto.ParseRequest{RawRolls: []int{1, 10, 5}}},
		{name: "empty list is valid", req: dto.ParseRequest{RawRolls: []int{}}},
		{name: "missing list", req: dto.ParseRequest{}, wantFields: []string{"raw_rolls"}},
		{name: "out of range", req: dto.ParseRequest{RawRolls: []int{0, 4, 11}}, wantFields: []string{"raw_rolls[0]", "raw_rolls[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields := fieldsOf(t, tt.req.Validate())
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("Validate() fields = %v, want %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("Validate() fields missing %q: %v", f, fields)
				}
			}
		})
	}
}
