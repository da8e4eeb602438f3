package service

import (
	"context"
	"errors"
	"testing"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
)

func TestRoleService_Create_DuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(repository.NewRoleRepository(db))
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.CreateRoleRequest{Name: "管理员", Key: "admin"}); err != nil {
		t.Fatalf("首次创建失败: %v", err)
	}

	err := svc.Create(ctx, &dto.CreateRoleRequest{Name: "管理员2", Key: "admin"})
	if !errors.Is(err, ErrRoleExists) {
		t.Errorf("err = %v, want %v", err, ErrRoleExists)
	}
}

func TestRoleService_KeyReusableAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(repository.NewRoleRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateRoleRequest{Name: "管理员", Key: "admin"})
	roles, _, _ := svc.List(ctx, repository.PageFilter{})
	svc.Delete(ctx, roles[0].ID)

	// key 唯一性只约束未删除记录
	if err := svc.Create(ctx, &dto.CreateRoleRequest{Name: "新管理员", Key: "admin"}); err != nil {
		t.Errorf("软删除后 key 应可复用: %v", err)
	}
}

func TestRoleService_Update_KeyConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(repository.NewRoleRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateRoleRequest{Name: "管理员", Key: "admin"})
	svc.Create(ctx, &dto.CreateRoleRequest{Name: "运营", Key: "operator"})
	roles, _, _ := svc.List(ctx, repository.PageFilter{})

	// 把第二个角色的 key 改成第一个的应冲突
	err := svc.Update(ctx, &dto.UpdateRoleRequest{ID: roles[1].ID, Name: "运营", Key: "admin"})
	if !errors.Is(err, ErrRoleExists) {
		t.Errorf("err = %v, want %v", err, ErrRoleExists)
	}

	// 保持自身 key 更新应成功
	if err := svc.Update(ctx, &dto.UpdateRoleRequest{ID: roles[1].ID, Name: "运营改", Key: "operator"}); err != nil {
		t.Errorf("保持自身 key 更新应成功: %v", err)
	}
}
