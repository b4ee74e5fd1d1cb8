package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/infrastructure/queue"
)

func newLocalDirectory(f *fixture) *LocalSessionDirectory {
	return NewLocalSessionDirectory(f.store, f.clients, DemoAdmins(), zerolog.Nop())
}

func TestLocalAuthenticate_ReturnsRecordWithoutPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, _ := f.clients.AddClient(ctx, validClientInput())
	dir := newLocalDirectory(f)

	p, err := dir.Authenticate(ctx, domain.KindClient, "ANN@example.com", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	stored, _ := f.clients.GetClient(ctx, c.ID)
	if !reflect.DeepEqual(p, stored.Principal()) {
		t.Fatalf("principal = %+v, want %+v", p, stored.Principal())
	}
}

func TestLocalAuthenticate_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.clients.AddClient(ctx, validClientInput())
	dir := newLocalDirectory(f)

	tests := []struct {
		name     string
		kind     domain.PrincipalKind
		email    string
		password string
		want     error
	}{
		{"unknown email", domain.KindClient, "nobody@example.com", "secret", domain.ErrAuthFailure},
		{"wrong password", domain.KindClient, "ann@example.com", "Secret", domain.ErrAuthFailure},
		{"client is not admin", domain.KindAdmin, "ann@example.com", "secret", domain.ErrAuthFailure},
		{"missing password", domain.KindClient, "ann@example.com", "", domain.ErrValidation},
		{"malformed email", domain.KindClient, "ann", "secret", domain.ErrValidation},
		{"unknown kind", "guest", "ann@example.com", "secret", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dir.Authenticate(ctx, tt.kind, tt.email, tt.password)
			if p != nil || !errors.Is(err, tt.want) {
				t.Fatalf("got %+v, %v; want %v", p, err, tt.want)
			}
		})
	}
}

func TestLocalAuthenticate_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.clients.AddClient(ctx, validClientInput())
	dir := newLocalDirectory(f)

	_, errUnknown := dir.Authenticate(ctx, domain.KindClient, "nobody@example.com", "secret")
	_, errWrong := dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "bad")
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("errors differ: %q vs %q", errUnknown, errWrong)
	}
}

// Duplicate emails are accepted; authentication resolves to the first
// matching record with the right password.
func TestLocalAuthenticate_DuplicateEmailFirstMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, _ := f.clients.AddClient(ctx, validClientInput())
	second, _ := f.clients.AddClient(ctx, validClientInput())
	dir := newLocalDirectory(f)

	for i := 0; i < 3; i++ {
		p, err := dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "secret")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if p.ID != first.ID {
			t.Fatalf("resolved %s, want first record %s (not %s)", p.ID, first.ID, second.ID)
		}
	}
}

func TestLocalAuthenticate_Admins(t *testing.T) {
	f := newFixture(t)
	dir := newLocalDirectory(f)

	p, err := dir.Authenticate(context.Background(), domain.KindAdmin, "SuperAdmin@Studio.com", "SuperAdmin123!")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if p.Role != domain.RoleSuperAdmin || p.Kind != domain.KindAdmin || p.ID != "admin2" {
		t.Fatalf("unexpected admin principal: %+v", p)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := store.WithProfile(context.Background(), "p1")
	dir := newLocalDirectory(f)

	p := &domain.Principal{Kind: domain.KindClient, ID: "client1", Name: "John Doe", Email: "john.doe@email.com", Gallery: []domain.MediaItem{{ID: "m1", Type: domain.MediaImage, URL: "u"}}}
	if err := dir.StartSession(ctx, domain.KindClient, p); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	got, err := dir.CurrentPrincipal(ctx, domain.KindClient)
	if err != nil {
		t.Fatalf("CurrentPrincipal: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("current = %+v, want %+v", got, p)
	}

	admin, _ := dir.CurrentPrincipal(ctx, domain.KindAdmin)
	if admin != nil {
		t.Fatalf("admin session must be independent, got %+v", admin)
	}

	if err := dir.EndSession(ctx, domain.KindClient); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	got, err = dir.CurrentPrincipal(ctx, domain.KindClient)
	if err != nil || got != nil {
		t.Fatalf("after EndSession got %+v, %v", got, err)
	}
	ok, _ := dir.IsAuthenticated(ctx, domain.KindClient)
	if ok {
		t.Fatal("expected not authenticated")
	}
}

func TestSession_ScopedPerProfile(t *testing.T) {
	f := newFixture(t)
	dir := newLocalDirectory(f)
	a := store.WithProfile(context.Background(), "a")
	b := store.WithProfile(context.Background(), "b")

	if _, err := dir.Login(a, domain.KindAdmin, "admin@studio.com", "Admin123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok, _ := dir.IsAuthenticated(a, domain.KindAdmin); !ok {
		t.Fatal("profile a should be logged in")
	}
	if ok, _ := dir.IsAuthenticated(b, domain.KindAdmin); ok {
		t.Fatal("profile b must not see profile a's session")
	}
}

func TestSession_StoredWithoutPassword(t *testing.T) {
	f := newFixture(t)
	ctx := store.WithProfile(context.Background(), "p1")
	f.clients.AddClient(ctx, validClientInput())
	dir := newLocalDirectory(f)

	if _, err := dir.Login(ctx, domain.KindClient, "ann@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	raw, _, _ := f.kv.Get(ctx, "profile:p1:currentUser")
	if strings.Contains(raw, "password") || strings.Contains(raw, "secret") {
		t.Fatalf("session leaks credentials: %s", raw)
	}
}

// ---------------------------------------------------------------------------
// Remote backend stubs
// ---------------------------------------------------------------------------

type stubProvider struct {
	accounts map[string]struct {
		password string
		identity ports.Identity
	}
	err error
}

func newStubProvider() *stubProvider {
	return &stubProvider{accounts: make(map[string]struct {
		password string
		identity ports.Identity
	})}
}

func (p *stubProvider) SignIn(_ context.Context, email, password string) (*ports.Identity, error) {
	if p.err != nil {
		return nil, p.err
	}
	acc, ok := p.accounts[strings.ToLower(email)]
	if !ok {
		return nil, &domain.TransportError{Code: domain.CodeUserNotFound}
	}
	if acc.password != password {
		return nil, &domain.TransportError{Code: domain.CodeWrongPassword}
	}
	id := acc.identity
	return &id, nil
}

func (p *stubProvider) Register(_ context.Context, email, password, displayName string, admin bool) (*ports.Identity, error) {
	key := strings.ToLower(email)
	if _, ok := p.accounts[key]; ok {
		return nil, &domain.TransportError{Code: domain.CodeEmailInUse}
	}
	id := ports.Identity{UID: "uid-" + key, Email: key, DisplayName: displayName, Admin: admin, CreatedAt: time.Now().UTC()}
	p.accounts[key] = struct {
		password string
		identity ports.Identity
	}{password, id}
	return &id, nil
}

type stubLimiter struct {
	max    int
	counts map[string]int
	resets int
}

func (l *stubLimiter) Allow(_ context.Context, subject string) (bool, error) {
	l.counts[subject]++
	return l.counts[subject] <= l.max, nil
}

func (l *stubLimiter) Reset(_ context.Context, subject string) error {
	delete(l.counts, subject)
	l.resets++
	return nil
}

func TestRemoteAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := newStubProvider()
	provider.Register(ctx, "owner@studio.com", "pw123456", "Owner", true)
	provider.Register(ctx, "ann@example.com", "pw123456", "Ann", false)
	provider.Register(ctx, "new@example.com", "pw123456", "Newcomer", false)
	stored, _ := f.clients.AddClient(ctx, validClientInput())

	dir := NewRemoteSessionDirectory(f.store, provider, nil, f.clients, zerolog.Nop())

	admin, err := dir.Authenticate(ctx, domain.KindAdmin, "owner@studio.com", "pw123456")
	if err != nil || admin.Role != domain.RoleAdmin || admin.Name != "Owner" {
		t.Fatalf("admin = %+v, %v", admin, err)
	}

	_, err = dir.Authenticate(ctx, domain.KindAdmin, "ann@example.com", "pw123456")
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for non-admin, got %v", err)
	}

	client, err := dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "pw123456")
	if err != nil || client.ID != stored.ID {
		t.Fatalf("client should resolve to stored record: %+v, %v", client, err)
	}

	fresh, err := dir.Authenticate(ctx, domain.KindClient, "new@example.com", "pw123456")
	if err != nil || fresh.ID != "uid-new@example.com" || fresh.Gallery == nil {
		t.Fatalf("unmatched client = %+v, %v", fresh, err)
	}

	_, err = dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "nope")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Code != domain.CodeWrongPassword || te.Message() != "Incorrect password." {
		t.Fatalf("expected wrong-password transport error, got %v", err)
	}
}

func TestRemoteAuthenticate_AdminClaimFromEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := newStubProvider()
	provider.Register(ctx, "studio.admin@example.com", "pw123456", "", false)
	dir := NewRemoteSessionDirectory(f.store, provider, nil, f.clients, zerolog.Nop())

	p, err := dir.Authenticate(ctx, domain.KindAdmin, "studio.admin@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if p.Name != "studio.admin@example.com" {
		t.Fatalf("name should fall back to email, got %q", p.Name)
	}
}

func TestRemoteAuthenticate_RateLimited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := newStubProvider()
	provider.Register(ctx, "ann@example.com", "pw123456", "Ann", false)
	limiter := &stubLimiter{max: 2, counts: map[string]int{}}
	dir := NewRemoteSessionDirectory(f.store, provider, limiter, f.clients, zerolog.Nop())

	for i := 0; i < 2; i++ {
		dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "bad")
	}
	_, err := dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "pw123456")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Code != domain.CodeTooManyRequests {
		t.Fatalf("expected too-many-requests, got %v", err)
	}

	limiter.counts = map[string]int{}
	if _, err := dir.Authenticate(ctx, domain.KindClient, "ann@example.com", "pw123456"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected counter reset after success, got %d", limiter.resets)
	}
}

func TestRemoteLogin_StartsSession(t *testing.T) {
	f := newFixture(t)
	ctx := store.WithProfile(context.Background(), "p1")
	provider := newStubProvider()
	provider.Register(ctx, "admin@studio.com", "Admin123!", "Studio Admin", true)
	dir := NewRemoteSessionDirectory(f.store, provider, nil, f.clients, zerolog.Nop())

	if _, err := dir.Login(ctx, domain.KindAdmin, "admin@studio.com", "Admin123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	p, _ := dir.CurrentPrincipal(ctx, domain.KindAdmin)
	if p == nil || p.Email != "admin@studio.com" {
		t.Fatalf("expected admin session, got %+v", p)
	}

	provider.err = &domain.TransportError{Code: domain.CodeInternal}
	_, err := dir.Login(ctx, domain.KindAdmin, "admin@studio.com", "Admin123!")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.IsCredentialError() {
		t.Fatalf("expected provider outage error, got %v", err)
	}
}

func TestRemoteLogin_ClientAddedFromDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := store.WithProfile(context.Background(), "p1")
	provider := newStubProvider()
	clients := NewClientService(f.store, queue.Inline{}, NewConfirmations(testSecret, time.Minute), provider, zerolog.Nop())

	input := validClientInput()
	added, err := clients.AddClient(ctx, input)
	if err != nil {
		t.Fatalf("AddClient: %v", err)
	}
	if _, err := clients.AppendMedia(ctx, added.ID, []ports.NewMediaInput{
		{Type: domain.MediaImage, URL: "https://cdn.example.com/a.jpg"},
	}); err != nil {
		t.Fatalf("AppendMedia: %v", err)
	}

	dir := NewRemoteSessionDirectory(f.store, provider, nil, clients, zerolog.Nop())
	p, err := dir.Login(ctx, domain.KindClient, input.Email, input.Password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if p.ID != added.ID || p.Name != input.Name || len(p.Gallery) != 1 {
		t.Fatalf("principal should carry the stored client, got %+v", p)
	}

	_, err = dir.Login(ctx, domain.KindClient, input.Email, "wrong-password")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Code != domain.CodeWrongPassword {
		t.Fatalf("expected wrong-password, got %v", err)
	}
}

func TestAddClient_AccountRegistrationFailureAbortsAdd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := newStubProvider()
	clients := NewClientService(f.store, queue.Inline{}, NewConfirmations(testSecret, time.Minute), provider, zerolog.Nop())

	if _, err := clients.AddClient(ctx, validClientInput()); err != nil {
		t.Fatalf("AddClient: %v", err)
	}
	_, err := clients.AddClient(ctx, validClientInput())
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Code != domain.CodeEmailInUse {
		t.Fatalf("expected email-in-use, got %v", err)
	}

	all, _ := clients.ListClients(ctx)
	if len(all) != 1 {
		t.Fatalf("failed add must not persist, got %d clients", len(all))
	}
}
