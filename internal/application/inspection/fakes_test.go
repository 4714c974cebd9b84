package inspection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/application/quote"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

const actor = int64(42)

// memStore base de datos en memoria. RunInspection/RunQuote toman una instantánea y la
// restauran si la función falla, igual que un rollback.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	headers   map[int64]*entity.InspectionHeader
	lines     map[int64]*entity.InspectionLine
	serials   map[int64]*entity.InspectionSerial
	customers map[int64]*entity.Customer
	orders    map[int64]*entity.Order
	details   map[int64][]*entity.OrderDetail

	headerUpdates      int
	uniqueLocks        []string
	lockedBeforeExists bool
	failUpdate         error
	panicOnRead        bool
}

func newMemStore() *memStore {
	return &memStore{
		headers:   map[int64]*entity.InspectionHeader{},
		lines:     map[int64]*entity.InspectionLine{},
		serials:   map[int64]*entity.InspectionSerial{},
		customers: map[int64]*entity.Customer{},
		orders:    map[int64]*entity.Order{},
		details:   map[int64][]*entity.OrderDetail{},
	}
}

type snapshot struct {
	headers map[int64]*entity.InspectionHeader
	lines   map[int64]*entity.InspectionLine
	serials map[int64]*entity.InspectionSerial
	orders  map[int64]*entity.Order
	details map[int64][]*entity.OrderDetail
}

func (m *memStore) snapshot() snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := snapshot{
		headers: map[int64]*entity.InspectionHeader{},
		lines:   map[int64]*entity.InspectionLine{},
		serials: map[int64]*entity.InspectionSerial{},
		orders:  map[int64]*entity.Order{},
		details: map[int64][]*entity.OrderDetail{},
	}
	for k, v := range m.headers {
		snap.headers[k] = v.Clone()
	}
	for k, v := range m.lines {
		c := *v
		snap.lines[k] = &c
	}
	for k, v := range m.serials {
		c := *v
		snap.serials[k] = &c
	}
	for k, v := range m.orders {
		c := *v
		snap.orders[k] = &c
	}
	for k, v := range m.details {
		snap.details[k] = append([]*entity.OrderDetail(nil), v...)
	}
	return snap
}

func (m *memStore) restore(s snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headers, m.lines, m.serials, m.orders, m.details = s.headers, s.lines, s.serials, s.orders, s.details
}

func (m *memStore) RunInspection(ctx context.Context, fn func(
	headerRepo repository.InspectionRepository,
	lineRepo repository.InspectionLineRepository,
	serialRepo repository.InspectionSerialRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	snap := m.snapshot()
	if err := fn(headerRepoOf(m), lineRepoOf(m), serialRepoOf(m), customerRepoOf(m)); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) RunQuote(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	headerRepo repository.InspectionRepository,
	lineRepo repository.InspectionLineRepository,
) error) error {
	snap := m.snapshot()
	if err := fn(orderRepoOf(m), headerRepoOf(m), lineRepoOf(m)); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// header devuelve una copia de la fila tal como quedó confirmada.
func (m *memStore) header(id int64) *entity.InspectionHeader {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headers[id].Clone()
}

func (m *memStore) addHeader(h *entity.InspectionHeader) *entity.InspectionHeader {
	m.mu.Lock()
	defer m.mu.Unlock()
	h.ID = m.id()
	if h.Status == "" {
		h.Status = entity.InspectionStatusOpen
	}
	if h.CreatedBy == 0 {
		h.CreatedBy = actor
	}
	m.headers[h.ID] = h.Clone()
	return h
}

func (m *memStore) addLine(l *entity.InspectionLine) *entity.InspectionLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = m.id()
	if l.CreatedBy == 0 {
		l.CreatedBy = actor
	}
	c := *l
	m.lines[l.ID] = &c
	return l
}

func (m *memStore) addSerial(s *entity.InspectionSerial) *entity.InspectionSerial {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.id()
	if s.CreatedBy == 0 {
		s.CreatedBy = actor
	}
	c := *s
	m.serials[s.ID] = &c
	return s
}

type headerRepo struct{ m *memStore }

func headerRepoOf(m *memStore) *headerRepo { return &headerRepo{m: m} }

func (r *headerRepo) Create(ctx context.Context, h *entity.InspectionHeader) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	h.ID = r.m.id()
	r.m.headers[h.ID] = h.Clone()
	return nil
}

func (r *headerRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionHeader, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.panicOnRead {
		panic("lectura rota")
	}
	return r.m.headers[id].Clone(), nil
}

func (r *headerRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InspectionHeader, error) {
	return r.GetByID(ctx, id)
}

func (r *headerRepo) Update(ctx context.Context, h *entity.InspectionHeader) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failUpdate != nil {
		return r.m.failUpdate
	}
	r.m.headerUpdates++
	r.m.headers[h.ID] = h.Clone()
	return nil
}

func (r *headerRepo) LockUniqueKey(ctx context.Context, key string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.uniqueLocks = append(r.m.uniqueLocks, key)
	return nil
}

func (r *headerRepo) ExistsDuplicate(ctx context.Context, c repository.InspectionUniqueCriteria) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.lockedBeforeExists = len(r.m.uniqueLocks) > 0 && r.m.uniqueLocks[len(r.m.uniqueLocks)-1] == c.Key()
	for _, h := range r.m.headers {
		if h.IsCanceled || h.ID == c.ExcludeID {
			continue
		}
		match := true
		for field, want := range c.Fields {
			var got any
			switch field {
			case FieldQuoteNum:
				got = h.QuoteNum
			case FieldTagNumber:
				got = h.TagNumber
			case FieldDepartment:
				got = h.Department
			case FieldDescription:
				got = h.Description
			case FieldCustID:
				if h.CustID != nil {
					got = *h.CustID
				}
			}
			if got != want {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

type lineRepo struct{ m *memStore }

func lineRepoOf(m *memStore) *lineRepo { return &lineRepo{m: m} }

func (r *lineRepo) Create(ctx context.Context, l *entity.InspectionLine) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	l.ID = r.m.id()
	c := *l
	r.m.lines[l.ID] = &c
	return nil
}

func (r *lineRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionLine, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	l, ok := r.m.lines[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *lineRepo) Update(ctx context.Context, l *entity.InspectionLine) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c := *l
	r.m.lines[l.ID] = &c
	return nil
}

func (r *lineRepo) ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionLine, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.InspectionLine
	for _, l := range r.m.lines {
		if l.InspectionID == inspectionID && !l.IsDeleted {
			c := *l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type serialRepo struct{ m *memStore }

func serialRepoOf(m *memStore) *serialRepo { return &serialRepo{m: m} }

func (r *serialRepo) Create(ctx context.Context, s *entity.InspectionSerial) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s.ID = r.m.id()
	c := *s
	r.m.serials[s.ID] = &c
	return nil
}

func (r *serialRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionSerial, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.serials[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *serialRepo) Update(ctx context.Context, s *entity.InspectionSerial) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c := *s
	r.m.serials[s.ID] = &c
	return nil
}

func (r *serialRepo) list(keep func(*entity.InspectionSerial) bool) []*entity.InspectionSerial {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.InspectionSerial
	for _, s := range r.m.serials {
		if !s.IsDeleted && keep(s) {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *serialRepo) ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionSerial, error) {
	return r.list(func(s *entity.InspectionSerial) bool { return s.InspectionID == inspectionID }), nil
}

func (r *serialRepo) ListByLine(ctx context.Context, lineID int64) ([]*entity.InspectionSerial, error) {
	return r.list(func(s *entity.InspectionSerial) bool { return s.LineID != nil && *s.LineID == lineID }), nil
}

func (r *serialRepo) ExistsInInspection(ctx context.Context, inspectionID int64, serialNum string, excludeID int64) (bool, error) {
	found := r.list(func(s *entity.InspectionSerial) bool {
		return s.InspectionID == inspectionID && s.SerialNum == serialNum && s.ID != excludeID
	})
	return len(found) > 0, nil
}

// SearchBySerialNumber devuelve las filas sin orden, como haría una consulta sin ORDER BY.
func (r *serialRepo) SearchBySerialNumber(ctx context.Context, serialNum string) ([]*entity.SerialEncounter, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.SerialEncounter
	for _, s := range r.m.serials {
		if s.IsDeleted || s.SerialNum != serialNum {
			continue
		}
		h := r.m.headers[s.InspectionID]
		out = append(out, &entity.SerialEncounter{
			SerialID:        s.ID,
			SerialNum:       s.SerialNum,
			LineID:          s.LineID,
			InspectionID:    h.ID,
			QuoteNum:        h.QuoteNum,
			TagNumber:       h.TagNumber,
			CustomerName:    h.CustomerName,
			Status:          h.Status,
			IsCanceled:      h.IsCanceled,
			SerialCreatedOn: s.CreatedOn,
			ReceivedOn:      h.ReceivedOn,
			CompletedOn:     h.CompletedOn,
		})
	}
	return out, nil
}

type customerRepo struct{ m *memStore }

func customerRepoOf(m *memStore) *customerRepo { return &customerRepo{m: m} }

func (r *customerRepo) GetByID(ctx context.Context, custID int64) (*entity.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.customers[custID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type orderRepo struct{ m *memStore }

func orderRepoOf(m *memStore) *orderRepo { return &orderRepo{m: m} }

func (r *orderRepo) Create(ctx context.Context, o *entity.Order) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	o.ID = r.m.id()
	c := *o
	r.m.orders[o.ID] = &c
	return nil
}

func (r *orderRepo) CreateDetail(ctx context.Context, d *entity.OrderDetail) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d.ID = r.m.id()
	c := *d
	r.m.details[d.OrderID] = append(r.m.details[d.OrderID], &c)
	return nil
}

func (r *orderRepo) GetBySourceInspection(ctx context.Context, inspectionID int64) (*entity.Order, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, o := range r.m.orders {
		if o.SourceInspectionID != nil && *o.SourceInspectionID == inspectionID {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (r *orderRepo) ListDetails(ctx context.Context, orderID int64) ([]*entity.OrderDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]*entity.OrderDetail(nil), r.m.details[orderID]...), nil
}

func (r *orderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return fmt.Sprintf("Q%06d", len(r.m.orders)+1), nil
}

// fakeUsers directorio de empleados que además cuenta las resoluciones de nombres.
type fakeUsers struct {
	mu           sync.Mutex
	users        map[int64]*entity.User
	resolveCalls [][]int64
}

func (f *fakeUsers) add(u *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.Status == "" {
		u.Status = entity.UserStatusActive
	}
	f.users[u.EmployeeNumber] = u
}

func (f *fakeUsers) Create(ctx context.Context, u *entity.User) error {
	f.add(u)
	return nil
}

func (f *fakeUsers) GetByEmployeeNumber(ctx context.Context, n int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[n], nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role && u.Status == entity.UserStatusActive {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeNumber < out[j].EmployeeNumber })
	return out, nil
}

func (f *fakeUsers) ResolveDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolveCalls = append(f.resolveCalls, append([]int64(nil), ids...))
	out := make(map[int64]string)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u.DisplayName()
		}
	}
	return out, nil
}

func (f *fakeUsers) calls() [][]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]int64(nil), f.resolveCalls...)
}

func (f *fakeUsers) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolveCalls = nil
}

type sentNotification struct {
	kind       NotificationKind
	recipients []string
	payload    map[string]string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, kind NotificationKind, recipients []string, payload map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentNotification{kind: kind, recipients: recipients, payload: payload})
	return f.err
}

func (f *fakeNotifier) all() []sentNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentNotification(nil), f.sent...)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (f *fakePublisher) Publish(ctx context.Context, events ...event.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, events...)
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type sinkEntry struct {
	source  string
	message string
	cause   error
}

type fakeSink struct {
	mu      sync.Mutex
	entries []sinkEntry
}

func (f *fakeSink) Record(ctx context.Context, source, message string, cause error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, sinkEntry{source: source, message: message, cause: cause})
}

type fakeMetrics struct {
	mu            sync.Mutex
	operations    map[string]dto.ResultCode
	notifications int
	failures      int
}

func (f *fakeMetrics) ObserveOperation(op string, code dto.ResultCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operations[op] = code
}

func (f *fakeMetrics) ObserveNotification(kind NotificationKind, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications++
	if err != nil {
		f.failures++
	}
}

type fakeReports struct{}

func (fakeReports) InspectionReport(ctx context.Context, in *dto.InspectionDto) ([]byte, error) {
	if in == nil {
		return nil, errors.New("sin inspección")
	}
	return []byte("%PDF-1.4 " + in.QuoteNum), nil
}

// syncTasks ejecuta las tareas en línea para que los tests sean deterministas.
type syncTasks struct{}

func (syncTasks) Go(fn func()) { fn() }

type fixture struct {
	svc      *Service
	store    *memStore
	users    *fakeUsers
	notifier *fakeNotifier
	events   *fakePublisher
	sink     *fakeSink
	metrics  *fakeMetrics
}

func newFixture(t *testing.T, cfgs ...func(*Config)) *fixture {
	t.Helper()
	store := newMemStore()
	store.customers[7] = &entity.Customer{CustID: 7, CustomerName: "acme ltda"}
	store.customers[8] = &entity.Customer{CustID: 8, CustomerName: "Bombas del Sur"}

	users := &fakeUsers{users: map[int64]*entity.User{}}
	users.add(&entity.User{EmployeeNumber: actor, FirstName: "ana", LastName: "gómez", Email: "ana@example.com", Role: entity.RoleInspector})
	users.add(&entity.User{EmployeeNumber: 77, FirstName: "luis", LastName: "pérez", Email: "luis@example.com", Role: entity.RoleSales})
	users.add(&entity.User{EmployeeNumber: 78, FirstName: "marta", LastName: "ríos", Role: entity.RoleSales})

	f := &fixture{
		store:    store,
		users:    users,
		notifier: &fakeNotifier{},
		events:   &fakePublisher{},
		sink:     &fakeSink{},
		metrics:  &fakeMetrics{operations: map[string]dto.ResultCode{}},
	}
	cfg := Config{
		SalesTeamRecipients: []string{"ventas@example.com", "gerencia@example.com"},
		NotifyTimeout:       time.Second,
	}
	for _, fn := range cfgs {
		fn(&cfg)
	}
	svc, err := NewService(Deps{
		Tx:         store,
		HeaderRepo: headerRepoOf(store),
		LineRepo:   lineRepoOf(store),
		SerialRepo: serialRepoOf(store),
		UserRepo:   users,
		Names:      users,
		Notifier:   f.notifier,
		Converter:  quote.NewConversionService(store, zerolog.Nop()),
		Reports:    fakeReports{},
		Events:     f.events,
		ErrorSink:  f.sink,
		Tasks:      syncTasks{},
		Metrics:    f.metrics,
	}, zerolog.Nop(), cfg)
	require.NoError(t, err)

	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	var clockMu sync.Mutex
	svc.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		clock = clock.Add(time.Minute)
		return clock
	}
	f.svc = svc
	return f
}

func permsWith(mask entity.ModulePermission) *entity.UserPermissionsSet {
	return &entity.UserPermissionsSet{
		EmployeeNumber: actor,
		Modules: map[string]entity.ModulePermission{
			entity.ModuleInternalInspections: mask,
			entity.ModuleOrders:              entity.PermissionAll,
		},
	}
}

func allPerms() *entity.UserPermissionsSet { return permsWith(entity.PermissionAll) }

func ptr[T any](v T) *T { return &v }

func zeroLogger() zerolog.Logger { return zerolog.Nop() }
