package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"educrm/backend/internal/model"
	"educrm/backend/internal/repository"
)

// Map-backed mock repositories. Each mock hands out sequential ids and
// returns gorm.ErrRecordNotFound for misses, the same way the real
// PostgreSQL-backed implementations surface missing rows.

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[int64]*model.Group
	nextID int64
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[int64]*model.Group), nextID: 1}
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.Group) error {
	if group.ID == 0 {
		group.ID = m.nextID
		m.nextID++
	}
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id int64) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetByName(_ context.Context, name string) (*model.Group, error) {
	for _, g := range m.groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context) ([]model.Group, error) {
	result := make([]model.Group, 0, len(m.groups))
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.Group) error {
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id int64) error {
	delete(m.groups, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	result := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	delete(m.students, id)
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[int64]*model.Teacher
	nextID   int64
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[int64]*model.Teacher), nextID: 1}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.ID == 0 {
		teacher.ID = m.nextID
		m.nextID++
	}
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id int64) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	result := make([]model.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id int64) error {
	delete(m.teachers, id)
	return nil
}

// ── Mock PaymentRepository ──

type mockPaymentRepo struct {
	payments map[int64]*model.Payment
	nextID   int64

	// createErr, when set, makes Create fail. Used to exercise the
	// no-compensating-transaction path of debt issuance.
	createErr error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[int64]*model.Payment), nextID: 1}
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if payment.ID == 0 {
		payment.ID = m.nextID
		m.nextID++
	}
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockPaymentRepo) GetByID(_ context.Context, id int64) (*model.Payment, error) {
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	result := make([]model.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPaymentRepo) Update(_ context.Context, payment *model.Payment) error {
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockPaymentRepo) Delete(_ context.Context, id int64) error {
	delete(m.payments, id)
	return nil
}

// ── Mock ExpenseRepository ──

type mockExpenseRepo struct {
	expenses map[int64]*model.Expense
	nextID   int64
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{expenses: make(map[int64]*model.Expense), nextID: 1}
}

func (m *mockExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	if expense.ID == 0 {
		expense.ID = m.nextID
		m.nextID++
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *mockExpenseRepo) GetByID(_ context.Context, id int64) (*model.Expense, error) {
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExpenseRepo) List(_ context.Context) ([]model.Expense, error) {
	result := make([]model.Expense, 0, len(m.expenses))
	for _, e := range m.expenses {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockExpenseRepo) Delete(_ context.Context, id int64) error {
	delete(m.expenses, id)
	return nil
}

// ── Aggregate helper ──

// newMockRepository assembles a full Repository backed by in-memory mocks.
func newMockRepository() (*repository.Repository, *mockGroupRepo, *mockStudentRepo, *mockTeacherRepo, *mockPaymentRepo, *mockExpenseRepo) {
	groupRepo := newMockGroupRepo()
	studentRepo := newMockStudentRepo()
	teacherRepo := newMockTeacherRepo()
	paymentRepo := newMockPaymentRepo()
	expenseRepo := newMockExpenseRepo()

	repo := &repository.Repository{
		Group:   groupRepo,
		Student: studentRepo,
		Teacher: teacherRepo,
		Payment: paymentRepo,
		Expense: expenseRepo,
	}
	return repo, groupRepo, studentRepo, teacherRepo, paymentRepo, expenseRepo
}
