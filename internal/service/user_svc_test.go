package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
)

func TestUserService_Create_DuplicatePhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000001", Name: "张三"}); err != nil {
		t.Fatalf("首次创建失败: %v", err)
	}

	err := svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000001", Name: "李四"})
	if !errors.Is(err, ErrUserPhoneExists) {
		t.Errorf("err = %v, want %v", err, ErrUserPhoneExists)
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	// 插入 25 个用户
	for i := 0; i < 25; i++ {
		err := svc.Create(ctx, &dto.CreateUserRequest{
			Phone: fmt.Sprintf("138%08d", i),
			Name:  fmt.Sprintf("user%02d", i),
		})
		if err != nil {
			t.Fatalf("创建用户失败: %v", err)
		}
	}

	// 第二页返回第 11-20 条，total 为全部过滤后的总数
	users, total, err := svc.List(ctx, repository.PageFilter{PageNo: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("查询列表失败: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(users) != 10 {
		t.Fatalf("len = %d, want 10", len(users))
	}
	if users[0].Name != "user10" || users[9].Name != "user19" {
		t.Errorf("页窗口错误: 首条 %s 末条 %s", users[0].Name, users[9].Name)
	}
}

func TestUserService_List_PrefixFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000001", Name: "张三"})
	svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000002", Name: "张四"})
	svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000003", Name: "王五"})

	users, total, err := svc.List(ctx, repository.PageFilter{Name: "张"})
	if err != nil {
		t.Fatalf("查询列表失败: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Errorf("total = %d, len = %d, want 2, 2", total, len(users))
	}
}

func TestUserService_Update_ExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000001", Name: "张三"})
	users, _, _ := svc.List(ctx, repository.PageFilter{})
	id := users[0].ID

	// 使用自身手机号更新应成功
	if err := svc.Update(ctx, &dto.UpdateUserRequest{ID: id, Phone: "13800000001", Name: "张三改"}); err != nil {
		t.Errorf("使用自身手机号更新应成功: %v", err)
	}

	// 更新不存在的用户
	err := svc.Update(ctx, &dto.UpdateUserRequest{ID: 999, Phone: "13800000009", Name: "无"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want %v", err, ErrUserNotFound)
	}
}

func TestUserService_SoftDeleteHidesFromList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateUserRequest{Phone: "13800000001", Name: "张三"})
	users, _, _ := svc.List(ctx, repository.PageFilter{})

	svc.Delete(ctx, users[0].ID)

	if _, err := svc.Get(ctx, users[0].ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("删除后按 ID 获取应视为不存在, err = %v", err)
	}
	_, total, _ := svc.List(ctx, repository.PageFilter{})
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}
