// Package workflow orchestrates the registration, follow-up and sync
// operations against the remote store, the local snapshot and the offline
// queue.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/pricing"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/queue"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/session"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/snapshot"
)

// Registrar drives the registration lifecycle. It owns no state of its own;
// the snapshot and the queue carry the session's records.
type Registrar struct {
	store    sheetstore.Store
	queue    *queue.Queue
	snap     *snapshot.Snapshot
	sessions *session.Resolver
	resolver *rules.Resolver
	calc     *pricing.Calculator
	warnings *common.Warnings
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewRegistrar wires a registrar over the given collaborators.
func NewRegistrar(store sheetstore.Store, q *queue.Queue, snap *snapshot.Snapshot,
	sessions *session.Resolver, warnings *common.Warnings, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{
		store:    store,
		queue:    q,
		snap:     snap,
		sessions: sessions,
		resolver: rules.NewResolver(warnings),
		calc:     pricing.NewCalculator(warnings),
		warnings: warnings,
		logger:   logger,
		now:      time.Now,
		newID:    newRecordID,
	}
}

// newRecordID generates the short opaque id written to the id column.
func newRecordID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// RegisterInput is the registration form as submitted.
type RegisterInput struct {
	Name            string
	Unit            string
	ClassOfInterest string
	Phone           string
	OriginSchool    string
	Guardian        string
	Notes           string
	MathScore       int
	LangScore       int

	// ExamDate selects the session; the zero value means today.
	ExamDate time.Time
}

// Validate checks the form before any computation or I/O.
func (in *RegisterInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return common.NewUserError("o nome do aluno é obrigatório", common.ErrValidation)
	}
	if _, ok := rules.UnitByName(in.Unit); !ok {
		return common.NewUserError(
			fmt.Sprintf("unidade desconhecida: %q", in.Unit), common.ErrValidation)
	}
	if strings.TrimSpace(in.ClassOfInterest) == "" {
		return common.NewUserError("a turma de interesse é obrigatória", common.ErrValidation)
	}
	if in.MathScore < 0 || in.LangScore < 0 {
		return common.NewUserError("acertos não podem ser negativos", common.ErrValidation)
	}

	// Unknown classes fall back to the larger exam when capping scores; the
	// discount lookup reports them separately.
	maxSubject := rules.MaxSubjectScore(rules.SegmentEFAF)
	if seg, ok := rules.SegmentForClass(in.ClassOfInterest); ok {
		maxSubject = rules.MaxSubjectScore(seg)
	}
	if in.MathScore > maxSubject || in.LangScore > maxSubject {
		return common.NewUserError(
			fmt.Sprintf("acertos acima do máximo da prova (%d por disciplina)", maxSubject),
			common.ErrValidation)
	}
	return nil
}

// Register computes the candidate's discount and tuition figures and persists
// the result. The record lands on the remote sheet when the store is
// reachable, and on the durable local queue otherwise; only validation
// failures reject the registration.
func (r *Registrar) Register(ctx context.Context, in RegisterInput) (model.Outcome, *model.ResultRecord, error) {
	if err := in.Validate(); err != nil {
		return model.OutcomeRejected, nil, err
	}

	examDate := in.ExamDate
	if examDate.IsZero() {
		examDate = r.now()
	}

	rec := r.buildRecord(ctx, in, examDate)

	header, err := r.store.HeaderIndex(ctx, sheetstore.ResultsSheet)
	if err == nil {
		row := sheetstore.RowForHeader(sheetstore.RecordCells(rec), header)
		err = r.store.AppendRows(ctx, sheetstore.ResultsSheet, [][]any{row})
	}
	if err == nil {
		if rErr := r.snap.Reload(ctx, r.store); rErr != nil {
			r.snap.AppendLocal(rec)
		}
		r.logger.Info("registered result",
			"id", rec.ID, "name", rec.Name, "unit", rec.Unit, "discount_pct", rec.DiscountPct)
		return model.OutcomeSynced, rec, nil
	}

	if !common.IsStoreUnavailable(err) {
		return model.OutcomeRejected, nil, err
	}

	if qErr := r.queue.Enqueue(ctx, rec); qErr != nil {
		return model.OutcomeRejected, nil,
			fmt.Errorf("store unreachable and local queue failed: %w", qErr)
	}
	r.snap.AppendLocal(rec)
	r.logger.Warn("store unreachable, registration queued locally",
		"id", rec.ID, "name", rec.Name, "error", err.Error())
	return model.OutcomeQueued, rec, nil
}

// buildRecord runs the discount and pricing pipeline for one registration.
func (r *Registrar) buildRecord(ctx context.Context, in RegisterInput, examDate time.Time) *model.ResultRecord {
	track, _ := rules.TrackForClass(in.ClassOfInterest)

	total := in.MathScore + in.LangScore
	fraction := r.resolver.Resolve(in.Unit, in.ClassOfInterest, total)

	quote := r.calc.PriceQuote(track)
	discounted := pricing.ApplyDiscount(quote, fraction)

	return &model.ResultRecord{
		ID:                 r.newID(),
		CreatedAt:          r.now(),
		Name:               strings.TrimSpace(in.Name),
		Unit:               in.Unit,
		Session:            r.sessions.Resolve(ctx, examDate),
		ClassOfInterest:    in.ClassOfInterest,
		Track:              track,
		Phone:              brl.FormatPhone(in.Phone),
		OriginSchool:       strings.TrimSpace(in.OriginSchool),
		Guardian:           strings.TrimSpace(in.Guardian),
		Notes:              strings.TrimSpace(in.Notes),
		MathScore:          in.MathScore,
		LangScore:          in.LangScore,
		DiscountPct:        rules.Percent(fraction),
		AnnualCash:         pricing.AnnualCash(discounted.AnnualTotal).Round(2),
		FirstInstallment:   discounted.FirstInstallment.Round(2),
		MonthlyInstallment: discounted.MonthlyInstallment.Round(2),
	}
}

// FollowUpInput is the post-exam negotiation form. Monetary fields arrive as
// free-typed text and are normalized to the canonical currency form before
// writing.
type FollowUpInput struct {
	RecordID            string
	OriginSchool        string
	Guardian            string
	Phone               string
	NegotiatedValue     string
	ExpectedInstallment string
	Notes               string
	Enrolled            model.EnrollStatus
}

// Validate checks the follow-up form before any I/O.
func (in *FollowUpInput) Validate() error {
	if strings.TrimSpace(in.RecordID) == "" {
		return common.NewUserError("registro não selecionado", common.ErrValidation)
	}
	if strings.TrimSpace(in.OriginSchool) == "" {
		return common.NewUserError("a escola de origem é obrigatória", common.ErrValidation)
	}
	switch in.Enrolled {
	case model.EnrollUnknown, model.EnrollYes, model.EnrollNo:
	default:
		return common.NewUserError(
			fmt.Sprintf("resposta de matrícula inválida: %q", in.Enrolled), common.ErrValidation)
	}
	return nil
}

// SaveFollowUp amends an existing result row with the negotiation outcome in
// one batched write. The snapshot record is updated on success so the session
// keeps seeing the amended values without a reload.
func (r *Registrar) SaveFollowUp(ctx context.Context, in FollowUpInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	row, ok := r.snap.RowOf(in.RecordID)
	if !ok {
		found, err := r.store.FindRowByID(ctx, sheetstore.ResultsSheet,
			sheetstore.ColRecordID, in.RecordID)
		if err != nil {
			return err
		}
		row = found
		r.snap.SetRow(in.RecordID, row)
	}

	negotiated := normalizeCurrency(in.NegotiatedValue)
	expected := normalizeCurrency(in.ExpectedInstallment)
	phone := brl.FormatPhone(in.Phone)

	updates := []sheetstore.CellUpdate{
		{Column: sheetstore.ColOriginSchool, Row: row, Value: strings.TrimSpace(in.OriginSchool)},
		{Column: sheetstore.ColGuardian, Row: row, Value: strings.TrimSpace(in.Guardian)},
		{Column: sheetstore.ColPhone, Row: row, Value: phone},
		{Column: sheetstore.ColNegotiatedValue, Row: row, Value: negotiated},
		{Column: r.snap.ExpectedColumn(), Row: row, Value: expected},
		{Column: sheetstore.ColEnrolled, Row: row, Value: string(in.Enrolled)},
		{Column: sheetstore.ColFormNotes, Row: row, Value: strings.TrimSpace(in.Notes)},
	}
	if err := r.store.BatchWriteCells(ctx, sheetstore.ResultsSheet, updates); err != nil {
		return err
	}

	if rec := r.snap.ByID(in.RecordID); rec != nil {
		rec.OriginSchool = strings.TrimSpace(in.OriginSchool)
		rec.Guardian = strings.TrimSpace(in.Guardian)
		rec.Phone = phone
		rec.NegotiatedValue = brl.ParseCurrency(negotiated)
		rec.ExpectedInstallment = brl.ParseCurrency(expected)
		rec.Enrolled = in.Enrolled
		rec.Notes = strings.TrimSpace(in.Notes)
	}

	r.logger.Info("saved follow-up", "id", in.RecordID, "row", row, "enrolled", string(in.Enrolled))
	return nil
}

// normalizeCurrency re-renders free-typed money text in the canonical form.
// Empty input stays empty so blank cells are not overwritten with "R$ 0,00".
func normalizeCurrency(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return brl.FormatCurrency(brl.ParseCurrency(raw))
}

// SyncPending flushes the offline queue as one batched append: either every
// queued record reaches the sheet and the queue is cleared, or the queue is
// left untouched. Returns the number of records flushed.
func (r *Registrar) SyncPending(ctx context.Context) (int, error) {
	pending, err := r.queue.Pending(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	header, err := r.store.HeaderIndex(ctx, sheetstore.ResultsSheet)
	if err != nil {
		_ = r.queue.RecordFlushAttempt(ctx, len(pending), false)
		return 0, err
	}

	rows := make([][]any, len(pending))
	for i, rec := range pending {
		rows[i] = sheetstore.RowForHeader(sheetstore.RecordCells(rec), header)
	}

	if err := r.store.AppendRows(ctx, sheetstore.ResultsSheet, rows); err != nil {
		_ = r.queue.RecordFlushAttempt(ctx, len(pending), false)
		return 0, err
	}
	_ = r.queue.RecordFlushAttempt(ctx, len(pending), true)

	if err := r.queue.Clear(ctx); err != nil {
		return len(pending), fmt.Errorf("records flushed but queue not cleared: %w", err)
	}

	r.store.Invalidate(sheetstore.ResultsSheet)
	if rErr := r.snap.Reload(ctx, r.store); rErr != nil {
		// Records queued in an earlier session are not yet in the snapshot.
		for _, rec := range pending {
			if r.snap.ByID(rec.ID) == nil {
				r.snap.AppendLocal(rec)
			}
		}
	}

	r.logger.Info("flushed offline queue", "records", len(pending))
	return len(pending), nil
}

// PendingCount returns the number of records waiting in the offline queue.
func (r *Registrar) PendingCount(ctx context.Context) (int, error) {
	return r.queue.Count(ctx)
}

// Simulate answers the negotiation questions for a unit and track without
// touching any record: the full-price quote, the quote at the given discount,
// the lowest negotiable installment, and the discount a desired installment
// would require.
func (r *Registrar) Simulate(track, unit string, fraction, desired decimal.Decimal) Simulation {
	quote := r.calc.PriceQuote(track)
	discounted := pricing.ApplyDiscount(quote, fraction)

	sim := Simulation{
		Track:       track,
		Unit:        unit,
		FullPrice:   quote,
		Discounted:  discounted,
		AnnualCash:  pricing.AnnualCash(discounted.AnnualTotal).Round(2),
		MinInstall:  r.calc.MinimumInstallment(unit, track).Round(2),
		DiscountPct: rules.Percent(fraction),
	}
	if !desired.IsZero() {
		sim.RequiredPct = rules.Percent(r.calc.RequiredDiscount(track, desired))
	}
	return sim
}

// Simulation is the result of a negotiation what-if.
type Simulation struct {
	Track       string
	Unit        string
	FullPrice   pricing.Quote
	Discounted  pricing.Quote
	AnnualCash  decimal.Decimal
	MinInstall  decimal.Decimal
	DiscountPct int
	RequiredPct int
}
