package service

import (
	"context"
	"errors"
	"testing"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
)

func TestPermissionService_Create_RejectsID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(repository.NewPermissionRepository(db))

	// 创建时不允许前端指定 ID
	err := svc.Create(context.Background(), &dto.CreatePermissionRequest{ID: 7, Key: "sys:user:add"})
	if !errors.Is(err, ErrPermissionIDPresent) {
		t.Errorf("err = %v, want %v", err, ErrPermissionIDPresent)
	}
}

func TestPermissionService_Create_DuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(repository.NewPermissionRepository(db))
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.CreatePermissionRequest{Key: "sys:user:add"}); err != nil {
		t.Fatalf("首次创建失败: %v", err)
	}

	err := svc.Create(ctx, &dto.CreatePermissionRequest{Key: "sys:user:add"})
	if !errors.Is(err, ErrPermissionExists) {
		t.Errorf("err = %v, want %v", err, ErrPermissionExists)
	}
}

func TestPermissionService_List_KeyPrefix(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(repository.NewPermissionRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreatePermissionRequest{Key: "sys:user:add"})
	svc.Create(ctx, &dto.CreatePermissionRequest{Key: "sys:user:del"})
	svc.Create(ctx, &dto.CreatePermissionRequest{Key: "biz:order:list"})

	_, total, err := svc.List(ctx, repository.PageFilter{Name: "sys:"})
	if err != nil {
		t.Fatalf("查询列表失败: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
}
