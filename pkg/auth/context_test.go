package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithUserID_UserIDFromCtx(t *testing.T) {
	ctx := WithUserID(context.Background(), "user_2abc")

	got, err := UserIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "user_2abc" {
		t.Fatalf("expected user_2abc, got %v", got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	_, err := UserIDFromCtx(context.Background())
	if !errors.Is(err, ErrUserIDNotFound) {
		t.Fatalf("expected ErrUserIDNotFound, got %v", err)
	}
}

func TestUserIDFromCtx_EmptyString(t *testing.T) {
	ctx := WithUserID(context.Background(), "")
	_, err := UserIDFromCtx(ctx)
	if !errors.Is(err, ErrUserIDNotFound) {
		t.Fatalf("expected ErrUserIDNotFound for empty id, got %v", err)
	}
}

func TestUserIDFromCtx_Isolation(t *testing.T) {
	ctx1 := WithUserID(context.Background(), "user_one")
	ctx2 := WithUserID(context.Background(), "user_two")

	got1, _ := UserIDFromCtx(ctx1)
	got2, _ := UserIDFromCtx(ctx2)

	if got1 != "user_one" {
		t.Fatalf("ctx1: expected user_one, got %v", got1)
	}
	if got2 != "user_two" {
		t.Fatalf("ctx2: expected user_two, got %v", got2)
	}
}
