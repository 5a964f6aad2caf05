package repository

import (
	"context"

	"gorm.io/gorm"

	"ems/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	CrudRepository[model.Employee]
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	CrudRepository[model.Employee]
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{
		CrudRepository: NewCrudRepo[model.Employee](db),
		db:             db,
	}
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
