package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shiftdesk/internal/authz"
	"shiftdesk/internal/model"
)

// In-memory repositories backing the service tests. They satisfy the same
// interfaces as the GORM implementations; the composite unique rules surface
// as gorm.ErrDuplicatedKey, the way the database indexes would report them.
// Services are constructed with a nil *gorm.DB so transactional validation
// runs against these stores directly.

type memStore struct {
	users     map[uuid.UUID]*model.User
	shifts    map[uuid.UUID]*model.Shift
	schedules map[uuid.UUID]*model.ScheduleAssignment
	ptos      map[uuid.UUID]*model.PTORequest
	overrides map[uuid.UUID]*model.LunchBreakOverride
	prefs     map[uuid.UUID]*model.ShiftPreference
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uuid.UUID]*model.User),
		shifts:    make(map[uuid.UUID]*model.Shift),
		schedules: make(map[uuid.UUID]*model.ScheduleAssignment),
		ptos:      make(map[uuid.UUID]*model.PTORequest),
		overrides: make(map[uuid.UUID]*model.LunchBreakOverride),
		prefs:     make(map[uuid.UUID]*model.ShiftPreference),
	}
}

// ─── Seed helpers ────────────────────────────────────────────────────────────

func (s *memStore) addUser(username, role string) *model.User {
	u := &model.User{ID: uuid.New(), Username: username, Role: role}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addUserWithPassword(username, role, password string) *model.User {
	u := s.addUser(username, role)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u.PasswordHash = string(hash)
	return u
}

func (s *memStore) addShift(name, start, end, duration, paid string) *model.Shift {
	sh := &model.Shift{
		ID:               uuid.New(),
		Name:             name,
		StartTime:        start,
		EndTime:          end,
		DurationHours:    mustDecimal(duration),
		DefaultPaidHours: mustDecimal(paid),
	}
	s.shifts[sh.ID] = sh
	return sh
}

func (s *memStore) addSchedule(employee *model.User, shift *model.Shift, date time.Time, locked bool) *model.ScheduleAssignment {
	a := &model.ScheduleAssignment{
		ID:         uuid.New(),
		EmployeeID: employee.ID,
		Date:       date,
		ShiftID:    shift.ID,
		Locked:     locked,
	}
	s.schedules[a.ID] = a
	return a
}

func (s *memStore) addPTO(employee *model.User, date time.Time, status string) *model.PTORequest {
	p := &model.PTORequest{
		ID:         uuid.New(),
		EmployeeID: employee.ID,
		Date:       date,
		Status:     status,
	}
	s.ptos[p.ID] = p
	return p
}

func (s *memStore) addOverride(schedule *model.ScheduleAssignment, extended bool) *model.LunchBreakOverride {
	o := &model.LunchBreakOverride{
		ID:         uuid.New(),
		ScheduleID: schedule.ID,
		Extended:   extended,
	}
	s.overrides[o.ID] = o
	return o
}

func (s *memStore) addPreference(employee *model.User, shift *model.Shift, date time.Time) *model.ShiftPreference {
	p := &model.ShiftPreference{
		ID:               uuid.New(),
		EmployeeID:       employee.ID,
		Date:             date,
		PreferredShiftID: shift.ID,
	}
	s.prefs[p.ID] = p
	return p
}

func ident(u *model.User) authz.Identity {
	return authz.Identity{UserID: u.ID, Role: u.Role}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("bad test date %q: %v", s, err))
	}
	return d.UTC()
}

// ─── Users ───────────────────────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *model.User) error {
	for id, existing := range r.s.users {
		if existing.Username == u.Username && id != u.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.users, id)
	return nil
}

// ─── Shifts ──────────────────────────────────────────────────────────────────

type memShiftRepo struct{ s *memStore }

func (r *memShiftRepo) Create(_ context.Context, sh *model.Shift) error {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	cp := *sh
	r.s.shifts[sh.ID] = &cp
	return nil
}

func (r *memShiftRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	sh, ok := r.s.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sh
	return &cp, nil
}

func (r *memShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	out := make([]model.Shift, 0, len(r.s.shifts))
	for _, sh := range r.s.shifts {
		out = append(out, *sh)
	}
	return out, nil
}

func (r *memShiftRepo) Update(_ context.Context, sh *model.Shift) error {
	cp := *sh
	r.s.shifts[sh.ID] = &cp
	return nil
}

func (r *memShiftRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.shifts, id)
	return nil
}

// ─── Schedule assignments ────────────────────────────────────────────────────

type memScheduleRepo struct{ s *memStore }

func (r *memScheduleRepo) attach(a model.ScheduleAssignment) model.ScheduleAssignment {
	a.Employee = r.s.users[a.EmployeeID]
	a.Shift = r.s.shifts[a.ShiftID]
	return a
}

func (r *memScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ScheduleAssignment, error) {
	a, ok := r.s.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.attach(*a)
	return &cp, nil
}

func (r *memScheduleRepo) List(_ context.Context) ([]model.ScheduleAssignment, error) {
	out := make([]model.ScheduleAssignment, 0, len(r.s.schedules))
	for _, a := range r.s.schedules {
		out = append(out, r.attach(*a))
	}
	return out, nil
}

func (r *memScheduleRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.ScheduleAssignment, error) {
	var out []model.ScheduleAssignment
	for _, a := range r.s.schedules {
		if a.EmployeeID == employeeID {
			out = append(out, r.attach(*a))
		}
	}
	return out, nil
}

func (r *memScheduleRepo) FindByEmployeeAndDate(_ context.Context, employeeID uuid.UUID, date time.Time) (*model.ScheduleAssignment, error) {
	for _, a := range r.s.schedules {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			cp := r.attach(*a)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.schedules, id)
	return nil
}

func (r *memScheduleRepo) CreateTx(_ *gorm.DB, a *model.ScheduleAssignment) error {
	for _, existing := range r.s.schedules {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	cp.Employee, cp.Shift = nil, nil
	r.s.schedules[a.ID] = &cp
	return nil
}

func (r *memScheduleRepo) SaveTx(_ *gorm.DB, a *model.ScheduleAssignment) error {
	for id, existing := range r.s.schedules {
		if id != a.ID && existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *a
	cp.Employee, cp.Shift = nil, nil
	r.s.schedules[a.ID] = &cp
	return nil
}

func (r *memScheduleRepo) ExistsForEmployeeAndDateTx(_ *gorm.DB, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	for id, a := range r.s.schedules {
		if id != excludeID && a.EmployeeID == employeeID && a.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

// ─── PTO requests ────────────────────────────────────────────────────────────

type memPTORepo struct{ s *memStore }

func (r *memPTORepo) attach(p model.PTORequest) model.PTORequest {
	p.Employee = r.s.users[p.EmployeeID]
	return p
}

func (r *memPTORepo) Create(_ context.Context, p *model.PTORequest) error {
	for _, existing := range r.s.ptos {
		if existing.EmployeeID == p.EmployeeID && existing.Date.Equal(p.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	cp.Employee = nil
	r.s.ptos[p.ID] = &cp
	return nil
}

func (r *memPTORepo) FindByID(_ context.Context, id uuid.UUID) (*model.PTORequest, error) {
	p, ok := r.s.ptos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.attach(*p)
	return &cp, nil
}

func (r *memPTORepo) List(_ context.Context) ([]model.PTORequest, error) {
	out := make([]model.PTORequest, 0, len(r.s.ptos))
	for _, p := range r.s.ptos {
		out = append(out, r.attach(*p))
	}
	return out, nil
}

func (r *memPTORepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.PTORequest, error) {
	var out []model.PTORequest
	for _, p := range r.s.ptos {
		if p.EmployeeID == employeeID {
			out = append(out, r.attach(*p))
		}
	}
	return out, nil
}

func (r *memPTORepo) Update(_ context.Context, p *model.PTORequest) error {
	for id, existing := range r.s.ptos {
		if id != p.ID && existing.EmployeeID == p.EmployeeID && existing.Date.Equal(p.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *p
	cp.Employee = nil
	r.s.ptos[p.ID] = &cp
	return nil
}

func (r *memPTORepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.ptos, id)
	return nil
}

func (r *memPTORepo) HasApprovedTx(_ *gorm.DB, employeeID uuid.UUID, date time.Time) (bool, error) {
	for _, p := range r.s.ptos {
		if p.EmployeeID == employeeID && p.Date.Equal(date) && p.Status == model.PTOApproved {
			return true, nil
		}
	}
	return false, nil
}

// ─── Lunch break overrides ───────────────────────────────────────────────────

type memLunchBreakRepo struct{ s *memStore }

func (r *memLunchBreakRepo) attach(o model.LunchBreakOverride) model.LunchBreakOverride {
	if a, ok := r.s.schedules[o.ScheduleID]; ok {
		cp := *a
		cp.Employee = r.s.users[cp.EmployeeID]
		cp.Shift = r.s.shifts[cp.ShiftID]
		o.Schedule = &cp
	}
	return o
}

func (r *memLunchBreakRepo) Create(_ context.Context, o *model.LunchBreakOverride) error {
	for _, existing := range r.s.overrides {
		if existing.ScheduleID == o.ScheduleID {
			return gorm.ErrDuplicatedKey
		}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	cp.Schedule = nil
	r.s.overrides[o.ID] = &cp
	return nil
}

func (r *memLunchBreakRepo) FindByID(_ context.Context, id uuid.UUID) (*model.LunchBreakOverride, error) {
	o, ok := r.s.overrides[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.attach(*o)
	return &cp, nil
}

func (r *memLunchBreakRepo) List(_ context.Context) ([]model.LunchBreakOverride, error) {
	out := make([]model.LunchBreakOverride, 0, len(r.s.overrides))
	for _, o := range r.s.overrides {
		out = append(out, r.attach(*o))
	}
	return out, nil
}

func (r *memLunchBreakRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.LunchBreakOverride, error) {
	var out []model.LunchBreakOverride
	for _, o := range r.s.overrides {
		if a, ok := r.s.schedules[o.ScheduleID]; ok && a.EmployeeID == employeeID {
			out = append(out, r.attach(*o))
		}
	}
	return out, nil
}

func (r *memLunchBreakRepo) Update(_ context.Context, o *model.LunchBreakOverride) error {
	cp := *o
	cp.Schedule = nil
	r.s.overrides[o.ID] = &cp
	return nil
}

func (r *memLunchBreakRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.overrides, id)
	return nil
}

func (r *memLunchBreakRepo) ExistsForSchedule(_ context.Context, scheduleID uuid.UUID) (bool, error) {
	for _, o := range r.s.overrides {
		if o.ScheduleID == scheduleID {
			return true, nil
		}
	}
	return false, nil
}

// ─── Shift preferences ───────────────────────────────────────────────────────

type memPreferenceRepo struct{ s *memStore }

func (r *memPreferenceRepo) attach(p model.ShiftPreference) model.ShiftPreference {
	p.Employee = r.s.users[p.EmployeeID]
	p.PreferredShift = r.s.shifts[p.PreferredShiftID]
	return p
}

func (r *memPreferenceRepo) Create(_ context.Context, p *model.ShiftPreference) error {
	for _, existing := range r.s.prefs {
		if existing.EmployeeID == p.EmployeeID && existing.Date.Equal(p.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	cp.Employee, cp.PreferredShift = nil, nil
	r.s.prefs[p.ID] = &cp
	return nil
}

func (r *memPreferenceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ShiftPreference, error) {
	p, ok := r.s.prefs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.attach(*p)
	return &cp, nil
}

func (r *memPreferenceRepo) List(_ context.Context) ([]model.ShiftPreference, error) {
	out := make([]model.ShiftPreference, 0, len(r.s.prefs))
	for _, p := range r.s.prefs {
		out = append(out, r.attach(*p))
	}
	return out, nil
}

func (r *memPreferenceRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.ShiftPreference, error) {
	var out []model.ShiftPreference
	for _, p := range r.s.prefs {
		if p.EmployeeID == employeeID {
			out = append(out, r.attach(*p))
		}
	}
	return out, nil
}

func (r *memPreferenceRepo) Update(_ context.Context, p *model.ShiftPreference) error {
	cp := *p
	cp.Employee, cp.PreferredShift = nil, nil
	r.s.prefs[p.ID] = &cp
	return nil
}

func (r *memPreferenceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.prefs, id)
	return nil
}

func (r *memPreferenceRepo) ExistsForEmployeeAndDate(_ context.Context, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	for id, p := range r.s.prefs {
		if id != excludeID && p.EmployeeID == employeeID && p.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}
