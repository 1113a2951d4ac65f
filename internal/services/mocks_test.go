package services

import (
	"context"
	"fmt"
	"sync"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/pkg/email"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
)

// In-memory repository fakes. They mirror the repository contracts closely
// enough for service behaviour tests, including the owner conjunction.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == emailAddr {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) MarkVerified(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.EmailVerified = true
	u.VerificationToken = ""
	u.VerificationExpires = nil
	return nil
}

func (r *fakeUserRepo) UpdatePlan(ctx context.Context, id string, plan models.SubscriptionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.SubscriptionPlan = plan
	return nil
}

type fakeResumeRepo struct {
	mu      sync.Mutex
	seq     int
	resumes map[string]*models.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[string]*models.Resume)}
}

func (r *fakeResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if resume.ID == "" {
		resume.ID = fmt.Sprintf("resume-%d", r.seq)
	}
	cp := *resume
	r.resumes[resume.ID] = &cp
	return nil
}

func (r *fakeResumeRepo) FindByUserID(ctx context.Context, userID string) ([]models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Resume
	for _, res := range r.resumes {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) FindByUserIDAndID(ctx context.Context, userID, id string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[id]
	if !ok || res.UserID != userID {
		return nil, repositories.ErrResumeNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeResumeRepo) Update(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[resume.ID]; !ok {
		return repositories.ErrResumeNotFound
	}
	cp := *resume
	r.resumes[resume.ID] = &cp
	return nil
}

func (r *fakeResumeRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[id]
	if !ok || res.UserID != userID {
		return repositories.ErrResumeNotFound
	}
	delete(r.resumes, id)
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment // keyed by gateway order id
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = "payment-" + p.GatewayOrderID
	}
	cp := *p
	r.payments[p.GatewayOrderID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.payments[orderID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindByUserIDAndOrderID(ctx context.Context, userID, orderID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[orderID]
	if !ok || p.UserID != userID {
		return nil, repositories.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) FindByUserID(ctx context.Context, userID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.GatewayOrderID]; !ok {
		return repositories.ErrPaymentNotFound
	}
	cp := *p
	r.payments[p.GatewayOrderID] = &cp
	return nil
}

// fakeMailer records sent messages; the mutex matters because the
// verification email goes out on a goroutine.
type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeUploader struct {
	url string
	err error
}

func (u *fakeUploader) UploadImage(ctx context.Context, file *dto.UploadFile) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	if u.url != "" {
		return u.url, nil
	}
	return "https://cdn.example.com/" + file.Filename, nil
}

type fakeGateway struct {
	secret  string
	orders  int
	failErr error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	if g.failErr != nil {
		return nil, g.failErr
	}
	g.orders++
	return &payment.Order{
		ID:       "order_fake",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return payment.VerifySignature(orderID, paymentID, signature, g.secret)
}
