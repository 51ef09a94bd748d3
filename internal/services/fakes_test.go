package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	apperrors "employee-portal/pkg/errors"
)

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(c.values[key], 10, 64)
	n++
	c.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *fakeCache) Expire(_ context.Context, key string, _ time.Duration) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}

type fakeUserRepo struct {
	users map[string]*entities.AppUser
}

func (r *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.AppUser, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpsertUser(_ context.Context, username, passwordHash string) (int64, error) {
	id := int64(len(r.users) + 1)
	r.users[username] = &entities.AppUser{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

type fakeEmployeeRepo struct {
	employees  map[string]*entities.Employee
	list       []dto.EmployeeListItem
	lastFilter dto.EmployeeFilter
	created    []entities.Employee
	createErr  error
	updateErr  error
	deleteErr  error
	updated    map[string]float64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*entities.Employee),
		updated:   make(map[string]float64),
	}
}

func (r *fakeEmployeeRepo) ListEmployees(_ context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeListItem, error) {
	r.lastFilter = filter
	return r.list, nil
}

func (r *fakeEmployeeRepo) ListEmployeeOptions(_ context.Context) ([]dto.EmployeeOption, error) {
	options := make([]dto.EmployeeOption, 0, len(r.employees))
	for _, e := range r.employees {
		options = append(options, dto.EmployeeOption{Ssn: e.Ssn, Fname: e.Fname, Lname: e.Lname})
	}
	return options, nil
}

func (r *fakeEmployeeRepo) FindEmployee(_ context.Context, ssn string) (*entities.Employee, error) {
	e, ok := r.employees[ssn]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) CreateEmployee(_ context.Context, employee entities.Employee) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, employee)
	return nil
}

func (r *fakeEmployeeRepo) UpdateEmployee(_ context.Context, ssn string, _ string, salary float64, _ int) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.employees[ssn]; !ok {
		return apperrors.ErrNotFound
	}
	r.updated[ssn] = salary
	return nil
}

func (r *fakeEmployeeRepo) DeleteEmployee(_ context.Context, ssn string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.employees[ssn]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.employees, ssn)
	return nil
}

type fakeDepartmentRepo struct {
	departments []entities.Department
	stats       []entities.DepartmentManagerStats
}

func (r *fakeDepartmentRepo) ListDepartments(_ context.Context) ([]entities.Department, error) {
	return r.departments, nil
}

func (r *fakeDepartmentRepo) ListManagerStats(_ context.Context) ([]entities.DepartmentManagerStats, error) {
	return r.stats, nil
}

type fakeProjectRepo struct {
	projects map[int]*entities.Project
	hours    map[string]float64
	addErr   error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int]*entities.Project), hours: make(map[string]float64)}
}

func (r *fakeProjectRepo) ListProjects(_ context.Context, _ dto.ProjectFilter) ([]dto.ProjectListItem, error) {
	items := make([]dto.ProjectListItem, 0, len(r.projects))
	for _, p := range r.projects {
		items = append(items, dto.ProjectListItem{Pnumber: p.Pnumber, Pname: p.Pname, Dname: p.Dname})
	}
	return items, nil
}

func (r *fakeProjectRepo) FindProject(_ context.Context, pno int) (*entities.Project, error) {
	p, ok := r.projects[pno]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) ListAssignedEmployees(_ context.Context, _ int) ([]dto.AssignedEmployee, error) {
	return []dto.AssignedEmployee{}, nil
}

func (r *fakeProjectRepo) AddHours(_ context.Context, a entities.Assignment) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.hours[fmt.Sprintf("%s/%d", a.Essn, a.Pno)] += a.Hours
	return nil
}
