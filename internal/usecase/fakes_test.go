package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type noopAudit struct{}

func (noopAudit) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
}

var (
	_ service.AuditService         = noopAudit{}
	_ service.PaymentGateway       = (*fakeGateway)(nil)
	_ repository.TestRepository    = (*fakeTestRepo)(nil)
	_ repository.OrderRepository   = (*fakeOrderRepo)(nil)
	_ repository.ReportRepository  = (*fakeReportRepo)(nil)
	_ repository.DoctorRepository  = (*fakeDoctorRepo)(nil)
	_ repository.CheckupRepository = (*fakeCheckupRepo)(nil)
	_ repository.UserRepository    = (*fakeUserRepo)(nil)

	_ repository.DepartmentRepository    = (*fakeDepartmentRepo)(nil)
	_ repository.QualificationRepository = (*fakeQualificationRepo)(nil)
	_ repository.AuditLogRepository      = (*fakeAuditLogRepo)(nil)
)

// fakeGateway approves or declines every charge and records what it saw
type fakeGateway struct {
	approve bool
	charges []decimal.Decimal
}

func (g *fakeGateway) Charge(ctx context.Context, reference string, amount decimal.Decimal) (*service.ChargeResult, error) {
	g.charges = append(g.charges, amount)
	return &service.ChargeResult{
		Reference: "fake-ref",
		Approved:  g.approve,
	}, nil
}

type fakeTestRepo struct {
	tests map[int]*entity.Test
}

func (r *fakeTestRepo) Create(ctx context.Context, test *entity.Test) error {
	test.ID = len(r.tests) + 1
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) FindAll(ctx context.Context, filter *entity.TestFilter) ([]entity.Test, int64, error) {
	var out []entity.Test
	for _, t := range r.tests {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id int) (*entity.Test, error) {
	return r.tests[id], nil
}

func (r *fakeTestRepo) FindByCode(ctx context.Context, code string) (*entity.Test, error) {
	for _, t := range r.tests {
		if t.Code == code {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTestRepo) Update(ctx context.Context, test *entity.Test) error {
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) Delete(ctx context.Context, id int) error {
	delete(r.tests, id)
	return nil
}

func (r *fakeTestRepo) CountByCollectionID(ctx context.Context, collectionID int) (int64, error) {
	var count int64
	for _, t := range r.tests {
		if t.CollectionID == collectionID {
			count++
		}
	}
	return count, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order, line *entity.OrderedTest) error {
	order.ID = uuid.New()
	line.OrderID = order.ID
	order.Line = line
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter *repository.OrderFilter) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		if filter != nil && filter.PaymentStatus != nil && o.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	order.PaymentStatus = status
	return nil
}

func (r *fakeOrderRepo) CountByTestID(ctx context.Context, testID int) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.Line != nil && o.Line.TestID == testID {
			count++
		}
	}
	return count, nil
}

type fakeReportRepo struct {
	reports map[uuid.UUID]*entity.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[uuid.UUID]*entity.Report{}}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	report.ID = uuid.New()
	report.CreatedAt = time.Now()
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	return r.reports[id], nil
}

func (r *fakeReportRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	var out []entity.Report
	for _, rep := range r.reports {
		if rep.UserID == userID {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Report, error) {
	for _, rep := range r.reports {
		if rep.OrderID == orderID {
			return rep, nil
		}
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	doctors map[int]*entity.Doctor
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	doctor.ID = len(r.doctors) + 1
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, filter *repository.DoctorFilter) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id int) error {
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) FindTimings(ctx context.Context, doctorID int) ([]entity.Timing, error) {
	return nil, nil
}

func (r *fakeDoctorRepo) CountByDepartmentID(ctx context.Context, departmentID int) (int64, error) {
	var count int64
	for _, d := range r.doctors {
		if d.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeDoctorRepo) CountByQualificationID(ctx context.Context, qualificationID int) (int64, error) {
	var count int64
	for _, d := range r.doctors {
		if d.QualificationID == qualificationID {
			count++
		}
	}
	return count, nil
}

type fakeDepartmentRepo struct {
	departments map[int]*entity.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[int]*entity.Department{}}
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	department.ID = len(r.departments) + 1
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepo) FindAll(ctx context.Context) ([]repository.DepartmentWithCount, error) {
	var out []repository.DepartmentWithCount
	for _, d := range r.departments {
		out = append(out, repository.DepartmentWithCount{Department: *d})
	}
	return out, nil
}

func (r *fakeDepartmentRepo) FindByID(ctx context.Context, id int) (*entity.Department, error) {
	return r.departments[id], nil
}

func (r *fakeDepartmentRepo) Update(ctx context.Context, department *entity.Department) error {
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepo) Delete(ctx context.Context, id int) error {
	delete(r.departments, id)
	return nil
}

type fakeQualificationRepo struct {
	qualifications map[int]*entity.Qualification
}

func newFakeQualificationRepo() *fakeQualificationRepo {
	return &fakeQualificationRepo{qualifications: map[int]*entity.Qualification{}}
}

func (r *fakeQualificationRepo) Create(ctx context.Context, qualification *entity.Qualification) error {
	qualification.ID = len(r.qualifications) + 1
	r.qualifications[qualification.ID] = qualification
	return nil
}

func (r *fakeQualificationRepo) FindAll(ctx context.Context) ([]repository.QualificationWithCount, error) {
	var out []repository.QualificationWithCount
	for _, q := range r.qualifications {
		out = append(out, repository.QualificationWithCount{Qualification: *q})
	}
	return out, nil
}

func (r *fakeQualificationRepo) FindByID(ctx context.Context, id int) (*entity.Qualification, error) {
	return r.qualifications[id], nil
}

func (r *fakeQualificationRepo) Update(ctx context.Context, qualification *entity.Qualification) error {
	r.qualifications[qualification.ID] = qualification
	return nil
}

func (r *fakeQualificationRepo) Delete(ctx context.Context, id int) error {
	delete(r.qualifications, id)
	return nil
}

// fakeAuditLogRepo returns entries newest first, the way the real
// repository orders them.
type fakeAuditLogRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditLogRepo) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	total := int64(len(r.logs))
	var out []entity.AuditLog
	for i := len(r.logs) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, total, nil
}

type fakeCheckupRepo struct {
	checkups map[uuid.UUID]*entity.Checkup
	lines    []*entity.DoctorForCheckup
	nextLine int64
}

func newFakeCheckupRepo() *fakeCheckupRepo {
	return &fakeCheckupRepo{checkups: map[uuid.UUID]*entity.Checkup{}}
}

func (r *fakeCheckupRepo) FindPendingByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Checkup, error) {
	for _, c := range r.checkups {
		if c.UserID == userID && c.PaymentStatus.IsPending() && sameDay(c.BookedAt, date) {
			return r.withLines(c), nil
		}
	}
	return nil, nil
}

func (r *fakeCheckupRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Checkup, error) {
	c, ok := r.checkups[id]
	if !ok {
		return nil, nil
	}
	return r.withLines(c), nil
}

func (r *fakeCheckupRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Checkup, error) {
	var out []entity.Checkup
	for _, c := range r.checkups {
		if c.UserID == userID {
			out = append(out, *r.withLines(c))
		}
	}
	return out, nil
}

func (r *fakeCheckupRepo) CreateWithLine(ctx context.Context, checkup *entity.Checkup, line *entity.DoctorForCheckup) error {
	checkup.ID = uuid.New()
	stored := *checkup
	r.checkups[checkup.ID] = &stored
	line.CheckupID = checkup.ID
	return r.CreateLine(ctx, line)
}

func (r *fakeCheckupRepo) FindLine(ctx context.Context, checkupID uuid.UUID, doctorID int) (*entity.DoctorForCheckup, error) {
	for _, l := range r.lines {
		if l.CheckupID == checkupID && l.DoctorID == doctorID {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckupRepo) CreateLine(ctx context.Context, line *entity.DoctorForCheckup) error {
	r.nextLine++
	line.ID = r.nextLine
	stored := *line
	r.lines = append(r.lines, &stored)
	return nil
}

func (r *fakeCheckupRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	checkup, ok := r.checkups[id]
	if !ok {
		return fmt.Errorf("checkup %s not found", id)
	}
	checkup.PaymentStatus = status
	return nil
}

func (r *fakeCheckupRepo) CountByDoctorID(ctx context.Context, doctorID int) (int64, error) {
	var count int64
	for _, l := range r.lines {
		if l.DoctorID == doctorID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCheckupRepo) withLines(c *entity.Checkup) *entity.Checkup {
	out := *c
	out.Doctors = nil
	for _, l := range r.lines {
		if l.CheckupID == c.ID {
			out.Doctors = append(out.Doctors, *l)
		}
	}
	return &out
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailAndBirthDate(ctx context.Context, email string, birthDate time.Time) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.BirthDate != nil && sameDay(*u.BirthDate, birthDate) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}
