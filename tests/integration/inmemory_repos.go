package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Principal Repo ---

type inMemoryPrincipalRepo struct {
	mu         sync.RWMutex
	principals map[uuid.UUID]*domain.Principal
}

func newInMemoryPrincipalRepo() *inMemoryPrincipalRepo {
	return &inMemoryPrincipalRepo{principals: make(map[uuid.UUID]*domain.Principal)}
}

func (r *inMemoryPrincipalRepo) Create(ctx context.Context, p *domain.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.principals {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.principals[p.ID] = p
	return nil
}

func (r *inMemoryPrincipalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.principals[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryPrincipalRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.principals {
		if p.AccessKey == accessKey {
			return p, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPrincipalRepo) GetByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.principals {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPrincipalRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.principals {
		if p.Address == address {
			return p, nil
		}
	}
	return nil, nil
}

// --- In-Memory Registry Repo ---

type inMemoryRegistryRepo struct {
	mu         sync.RWMutex
	registries map[uuid.UUID]*domain.Registry
}

func newInMemoryRegistryRepo() *inMemoryRegistryRepo {
	return &inMemoryRegistryRepo{registries: make(map[uuid.UUID]*domain.Registry)}
}

func (r *inMemoryRegistryRepo) Create(ctx context.Context, reg *domain.Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registries[reg.ID] = reg
	return nil
}

func (r *inMemoryRegistryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registries[id]
	if !ok {
		return nil, nil
	}
	return reg, nil
}

func (r *inMemoryRegistryRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.registries {
		if reg.Identifier == identifier {
			return reg, nil
		}
	}
	return nil, nil
}

// --- In-Memory Role Repo ---

type inMemoryRoleRepo struct {
	mu     sync.RWMutex
	grants map[string]struct{}
	admins map[string]domain.Role
}

func newInMemoryRoleRepo() *inMemoryRoleRepo {
	return &inMemoryRoleRepo{
		grants: make(map[string]struct{}),
		admins: make(map[string]domain.Role),
	}
}

func grantKey(registryID uuid.UUID, role domain.Role, principal domain.Address) string {
	return registryID.String() + "|" + string(role) + "|" + principal.String()
}

func adminKey(registryID uuid.UUID, role domain.Role) string {
	return registryID.String() + "|" + string(role)
}

func (r *inMemoryRoleRepo) HasRole(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grants[grantKey(registryID, role, principal)]
	return ok, nil
}

func (r *inMemoryRoleRepo) Grant(ctx context.Context, g *domain.RoleGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grants[grantKey(g.RegistryID, g.Role, g.Principal)] = struct{}{}
	return nil
}

func (r *inMemoryRoleRepo) Revoke(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.grants, grantKey(registryID, role, principal))
	return nil
}

func (r *inMemoryRoleRepo) AdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role) (domain.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if admin, ok := r.admins[adminKey(registryID, role)]; ok {
		return admin, nil
	}
	return domain.RoleSuperAdmin, nil
}

func (r *inMemoryRoleRepo) SetAdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role, admin domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[adminKey(registryID, role)] = admin
	return nil
}

// --- In-Memory Claim Repo ---

type inMemoryClaimRepo struct {
	mu     sync.RWMutex
	claims map[string]int64
}

func newInMemoryClaimRepo() *inMemoryClaimRepo {
	return &inMemoryClaimRepo{claims: make(map[string]int64)}
}

func claimKey(kind domain.AssetKind, token domain.Address, principal domain.Address) string {
	return string(kind) + "|" + token.String() + "|" + principal.String()
}

func (r *inMemoryClaimRepo) Get(ctx context.Context, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.claims[claimKey(kind, token, principal)], nil
}

func (r *inMemoryClaimRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error) {
	return r.Get(ctx, kind, token, principal)
}

func (r *inMemoryClaimRepo) Add(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[claimKey(kind, token, principal)] += delta
	return nil
}

func (r *inMemoryClaimRepo) Sum(ctx context.Context, kind domain.AssetKind, token domain.Address) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefix := string(kind) + "|" + token.String() + "|"
	var sum int64
	for key, amount := range r.claims {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			sum += amount
		}
	}
	return sum, nil
}

// --- In-Memory NFT Custody Repo ---

type inMemoryNFTCustodyRepo struct {
	mu      sync.RWMutex
	records map[string]*domain.NFTCustody
}

func newInMemoryNFTCustodyRepo() *inMemoryNFTCustodyRepo {
	return &inMemoryNFTCustodyRepo{records: make(map[string]*domain.NFTCustody)}
}

func nftKey(token domain.Address, tokenID int64) string {
	return fmt.Sprintf("%s|%d", token, tokenID)
}

func (r *inMemoryNFTCustodyRepo) Get(ctx context.Context, token domain.Address, tokenID int64) (*domain.NFTCustody, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[nftKey(token, tokenID)]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *inMemoryNFTCustodyRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) (*domain.NFTCustody, error) {
	return r.Get(ctx, token, tokenID)
}

func (r *inMemoryNFTCustodyRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.NFTCustody) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[nftKey(record.Token, record.TokenID)] = record
	return nil
}

func (r *inMemoryNFTCustodyRepo) Delete(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, nftKey(token, tokenID))
	return nil
}

// --- In-Memory Whitelist Repo ---

type inMemoryWhitelistRepo struct {
	mu      sync.RWMutex
	entries map[domain.WhitelistKind][]domain.WhitelistEntry
	nextPos map[domain.WhitelistKind]int64
}

func newInMemoryWhitelistRepo() *inMemoryWhitelistRepo {
	return &inMemoryWhitelistRepo{
		entries: make(map[domain.WhitelistKind][]domain.WhitelistEntry),
		nextPos: make(map[domain.WhitelistKind]int64),
	}
}

func (r *inMemoryWhitelistRepo) Contains(ctx context.Context, kind domain.WhitelistKind, token domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries[kind] {
		if e.Token == token {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryWhitelistRepo) Add(ctx context.Context, entry *domain.WhitelistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries[entry.Kind] {
		if e.Token == entry.Token {
			return nil
		}
	}
	entry.Position = r.nextPos[entry.Kind]
	r.nextPos[entry.Kind]++
	r.entries[entry.Kind] = append(r.entries[entry.Kind], *entry)
	return nil
}

func (r *inMemoryWhitelistRepo) Remove(ctx context.Context, kind domain.WhitelistKind, token domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[kind][:0]
	for _, e := range r.entries[kind] {
		if e.Token != token {
			kept = append(kept, e)
		}
	}
	r.entries[kind] = kept
	return nil
}

func (r *inMemoryWhitelistRepo) Count(ctx context.Context, kind domain.WhitelistKind) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries[kind])), nil
}

func (r *inMemoryWhitelistRepo) GetByIndex(ctx context.Context, kind domain.WhitelistKind, index int64) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.entries[kind]
	if index < 0 || index >= int64(len(list)) {
		return domain.ZeroAddress, nil
	}
	return list[index].Token, nil
}

func (r *inMemoryWhitelistRepo) List(ctx context.Context, kind domain.WhitelistKind) ([]domain.WhitelistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WhitelistEntry, len(r.entries[kind]))
	copy(out, r.entries[kind])
	return out, nil
}

// --- In-Memory Controller Repo ---

type inMemoryControllerRepo struct {
	mu         sync.RWMutex
	versions   []*domain.ControllerVersion
	registries *inMemoryRegistryRepo
}

func newInMemoryControllerRepo(registries *inMemoryRegistryRepo) *inMemoryControllerRepo {
	return &inMemoryControllerRepo{registries: registries}
}

func (r *inMemoryControllerRepo) Append(ctx context.Context, tx pgx.Tx, registryID uuid.UUID, setBy domain.Address) (*domain.ControllerVersion, error) {
	reg, err := r.registries.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("registry not found")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cv := &domain.ControllerVersion{
		Version:            uint64(len(r.versions)),
		RegistryID:         registryID,
		RegistryIdentifier: reg.Identifier,
		SetBy:              setBy,
		CreatedAt:          time.Now().UTC(),
	}
	r.versions = append(r.versions, cv)
	return cv, nil
}

func (r *inMemoryControllerRepo) Current(ctx context.Context) (*domain.ControllerVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.versions) == 0 {
		return nil, nil
	}
	return r.versions[len(r.versions)-1], nil
}

func (r *inMemoryControllerRepo) GetByVersion(ctx context.Context, version uint64) (*domain.ControllerVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if version >= uint64(len(r.versions)) {
		return nil, nil
	}
	return r.versions[version], nil
}

// --- In-Memory Custody Repo ---

type inMemoryCustodyRepo struct {
	mu     sync.RWMutex
	native int64
}

func newInMemoryCustodyRepo() *inMemoryCustodyRepo {
	return &inMemoryCustodyRepo{}
}

func (r *inMemoryCustodyRepo) NativeBalance(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.native, nil
}

func (r *inMemoryCustodyRepo) NativeBalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	return r.NativeBalance(ctx)
}

func (r *inMemoryCustodyRepo) AddNative(ctx context.Context, tx pgx.Tx, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.native += delta
	return nil
}

// --- In-Memory Transfer Repo ---

type inMemoryTransferRepo struct {
	mu        sync.RWMutex
	transfers []*domain.Transfer
}

func newInMemoryTransferRepo() *inMemoryTransferRepo {
	return &inMemoryTransferRepo{}
}

func (r *inMemoryTransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers = append(r.transfers, t)
	return nil
}

func (r *inMemoryTransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transfers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transfer
	for _, t := range r.transfers {
		if t.Principal != params.Principal {
			continue
		}
		if params.Direction != nil && t.Direction != *params.Direction {
			continue
		}
		if params.Kind != nil && t.Kind != *params.Kind {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, *t)
	}
	total := int64(len(result))

	// Simple pagination
	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transfer{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryTransferRepo) GetStats(ctx context.Context, principal domain.Address) (*ports.TransferStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.TransferStats{}
	for _, t := range r.transfers {
		if t.Principal != principal {
			continue
		}
		stats.TotalTransfers++
		switch t.Direction {
		case domain.TransferDirectionDeposit:
			stats.Deposits++
			if t.Kind == domain.AssetKindNative {
				stats.NativeDeposited += t.Amount
			}
		case domain.TransferDirectionWithdraw:
			stats.Withdrawals++
			if t.Kind == domain.AssetKindNative {
				stats.NativeWithdrawn += t.Amount
			}
		}
	}
	return stats, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[log.Key] = log
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	return l, nil
}

// --- In-Memory Fungible Token Ledger ---

type inMemoryFungibleLedger struct {
	mu         sync.Mutex
	balances   map[string]int64
	allowances map[string]int64
}

func newInMemoryFungibleLedger() *inMemoryFungibleLedger {
	return &inMemoryFungibleLedger{
		balances:   make(map[string]int64),
		allowances: make(map[string]int64),
	}
}

func balanceKey(token, holder domain.Address) string {
	return token.String() + "|" + holder.String()
}

func allowanceKey(token, owner, spender domain.Address) string {
	return token.String() + "|" + owner.String() + "|" + spender.String()
}

func (l *inMemoryFungibleLedger) mint(token, holder domain.Address, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[balanceKey(token, holder)] += amount
}

func (l *inMemoryFungibleLedger) approve(token, owner, spender domain.Address, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowanceKey(token, owner, spender)] = amount
}

func (l *inMemoryFungibleLedger) BalanceOf(ctx context.Context, token, holder domain.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[balanceKey(token, holder)], nil
}

func (l *inMemoryFungibleLedger) Allowance(ctx context.Context, token, owner, spender domain.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[allowanceKey(token, owner, spender)], nil
}

func (l *inMemoryFungibleLedger) TransferFrom(ctx context.Context, token, owner, spender, recipient domain.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[allowanceKey(token, owner, spender)] < amount {
		return fmt.Errorf("insufficient allowance")
	}
	if l.balances[balanceKey(token, owner)] < amount {
		return fmt.Errorf("insufficient balance")
	}
	l.allowances[allowanceKey(token, owner, spender)] -= amount
	l.balances[balanceKey(token, owner)] -= amount
	l.balances[balanceKey(token, recipient)] += amount
	return nil
}

func (l *inMemoryFungibleLedger) Transfer(ctx context.Context, token, holder, recipient domain.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[balanceKey(token, holder)] < amount {
		return fmt.Errorf("insufficient balance")
	}
	l.balances[balanceKey(token, holder)] -= amount
	l.balances[balanceKey(token, recipient)] += amount
	return nil
}

// --- In-Memory Non-Fungible Token Ledger ---

type inMemoryNFTLedger struct {
	mu        sync.Mutex
	owners    map[string]domain.Address
	approvals map[string]domain.Address
}

func newInMemoryNFTLedger() *inMemoryNFTLedger {
	return &inMemoryNFTLedger{
		owners:    make(map[string]domain.Address),
		approvals: make(map[string]domain.Address),
	}
}

func unitKey(token domain.Address, tokenID int64) string {
	return fmt.Sprintf("%s|%d", token, tokenID)
}

func (l *inMemoryNFTLedger) mint(token domain.Address, tokenID int64, owner domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.owners[unitKey(token, tokenID)] = owner
}

func (l *inMemoryNFTLedger) approve(token domain.Address, tokenID int64, operator domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.approvals[unitKey(token, tokenID)] = operator
}

func (l *inMemoryNFTLedger) OwnerOf(ctx context.Context, token domain.Address, tokenID int64) (domain.Address, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	owner, ok := l.owners[unitKey(token, tokenID)]
	if !ok {
		return domain.ZeroAddress, fmt.Errorf("token does not exist")
	}
	return owner, nil
}

func (l *inMemoryNFTLedger) TransferFrom(ctx context.Context, token, caller, owner, recipient domain.Address, tokenID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := unitKey(token, tokenID)
	current, ok := l.owners[key]
	if !ok || current != owner {
		return fmt.Errorf("transfer from incorrect owner")
	}
	if caller != owner && l.approvals[key] != caller {
		return fmt.Errorf("caller is not owner nor approved")
	}
	l.owners[key] = recipient
	delete(l.approvals, key)
	return nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
