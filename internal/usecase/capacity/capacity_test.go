package capacity

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
	"github.com/BruksfildServices01/office-scheduler/internal/testfixtures"
)

const siteID = testfixtures.SiteID

var pair = domain.Pair{SiteID: siteID, ProviderID: testfixtures.ProviderID}

func staff() access.Actor {
	return access.Actor{UserID: 7, TenantID: testfixtures.TenantID, Role: access.RoleScheduler}
}

func provider() access.Actor {
	return access.Actor{UserID: testfixtures.ProviderID, TenantID: testfixtures.TenantID, Role: access.RoleProvider}
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

type memoryArchive struct {
	reports []domain.RepairReport
	err     error
}

func (m *memoryArchive) Put(_ context.Context, r domain.RepairReport) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.reports = append(m.reports, r)
	return "repairs/" + r.RunID + ".json", nil
}

func newRepo(t *testing.T) (*gorm.DB, *repository.CapacityGormRepository) {
	t.Helper()
	db := testfixtures.OpenSQLite(t)
	testfixtures.SeedSite(t, db, siteID, testfixtures.TenantID)
	return db, repository.NewCapacityGormRepository(db)
}

func reserve(t *testing.T, repo domain.Repository, clients ...uint) {
	t.Helper()
	uc := NewReserveSlot(repo, audit.Nop{})
	for _, c := range clients {
		if _, err := uc.Execute(context.Background(), staff(), pair, c, "Mon"); err != nil {
			t.Fatalf("reserve client %d: %v", c, err)
		}
	}
}

func TestOverbookingSurfacesOnlyAfterRepair(t *testing.T) {
	db, repo := newRepo(t)
	ctx := context.Background()
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 5, 5)

	reserve(t, repo, 1, 2, 3)

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsAvailable != 2 {
		t.Fatalf("available after reservations = %d", got.SlotsAvailable)
	}

	_, err := NewSetDays(repo, audit.Nop{}).Execute(ctx, staff(), pair, ScopeScheduler, []domain.DayInput{
		{DayOfWeek: "monday", SlotsTotal: intp(2), IsActive: true},
	})
	if err != nil {
		t.Fatalf("set days: %v", err)
	}
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsTotal != 2 || got.SlotsAvailable != 0 {
		t.Fatalf("soft edit wrote total=%d available=%d", got.SlotsTotal, got.SlotsAvailable)
	}

	archive := &memoryArchive{}
	report, err := NewRepairSlots(repo, archive, audit.Nop{}, nil).Execute(ctx, staff(), pair)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	want := []domain.DayReport{{DayOfWeek: "monday", SlotsTotal: 2, Used: 3, AvailableBefore: 0, AvailableAfter: -1}}
	if !reflect.DeepEqual(report.Days, want) {
		t.Fatalf("report = %+v", report.Days)
	}
	if report.RunID == "" || report.ArchiveKey == "" || len(archive.reports) != 1 {
		t.Fatalf("report not archived: %+v", report)
	}

	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsAvailable != -1 {
		t.Fatalf("stored available = %d", got.SlotsAvailable)
	}

	_, err = NewReserveSlot(repo, audit.Nop{}).Execute(ctx, staff(), pair, 4, "monday")
	if !httperr.IsBusiness(err, "no_slots_available") {
		t.Fatalf("reserve on overbooked day: %v", err)
	}
}

func TestSetDays_DeactivateInUseIsRejected(t *testing.T) {
	db, repo := newRepo(t)
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 5, 5)
	reserve(t, repo, 1)

	_, err := NewSetDays(repo, audit.Nop{}).Execute(context.Background(), provider(), pair, ScopeSelf, []domain.DayInput{
		{DayOfWeek: "monday", IsActive: false},
	})

	var be httperr.BusinessError
	if !errors.As(err, &be) || be.Kind != httperr.KindConflict || be.Details["in_use"] != 1 {
		t.Fatalf("expected capacity_in_use conflict, got %v", err)
	}

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if !got.IsActive || got.SlotsAvailable != 4 {
		t.Fatalf("cell changed: %+v", got)
	}
}

func TestSetDays_BatchRollsBackOnInvalidDay(t *testing.T) {
	db, repo := newRepo(t)
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 5, 5)

	_, err := NewSetDays(repo, audit.Nop{}).Execute(context.Background(), provider(), pair, ScopeSelf, []domain.DayInput{
		{DayOfWeek: "monday", SlotsTotal: intp(8), IsActive: true},
		{DayOfWeek: "saturday", SlotsTotal: intp(2), IsActive: true},
	})
	if !httperr.IsBusiness(err, "invalid_day_of_week") {
		t.Fatalf("expected invalid_day_of_week, got %v", err)
	}

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsTotal != 5 {
		t.Fatalf("first day committed: total=%d", got.SlotsTotal)
	}
}

func TestSetDays_NewRowDerivesTotalFromWindow(t *testing.T) {
	_, repo := newRepo(t)

	cells, err := NewSetDays(repo, audit.Nop{}).Execute(context.Background(), staff(), pair, ScopeScheduler, []domain.DayInput{
		{DayOfWeek: "Sat", StartTime: strp("09:00"), EndTime: strp("11:30"), IsActive: true},
		{DayOfWeek: "tue", IsActive: true},
	})
	if err != nil {
		t.Fatalf("set days: %v", err)
	}
	if len(cells) != 2 || cells[0].DayOfWeek != "tuesday" || cells[1].DayOfWeek != "saturday" {
		t.Fatalf("cells = %+v", cells)
	}
	if cells[0].SlotsTotal != 0 || cells[1].SlotsTotal != 3 || cells[1].SlotsAvailable != 3 {
		t.Fatalf("totals = %d, %d/%d", cells[0].SlotsTotal, cells[1].SlotsTotal, cells[1].SlotsAvailable)
	}
}

func TestSetDays_ValidationAndAccess(t *testing.T) {
	_, repo := newRepo(t)
	uc := NewSetDays(repo, audit.Nop{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, provider(), pair, ScopeSelf, []domain.DayInput{
		{DayOfWeek: "monday", StartTime: strp("12:00"), EndTime: strp("11:00"), IsActive: true},
	})
	if !httperr.IsBusiness(err, "end_before_start") {
		t.Fatalf("end before start: %v", err)
	}

	other := domain.Pair{SiteID: siteID, ProviderID: 99}
	if _, err := uc.Execute(ctx, provider(), other, ScopeSelf, nil); httperr.KindOf(err) != httperr.KindAccessDenied {
		t.Fatalf("foreign provider: %v", err)
	}
	if _, err := uc.Execute(ctx, provider(), pair, ScopeScheduler, nil); httperr.KindOf(err) != httperr.KindAccessDenied {
		t.Fatalf("provider as scheduler: %v", err)
	}
}

func TestCapacity_OtherTenantSiteIsNotFound(t *testing.T) {
	db, repo := newRepo(t)
	ctx := context.Background()
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 5, 5)

	foreign := access.Actor{UserID: 8, TenantID: 2, Role: access.RoleScheduler}
	foreignProvider := access.Actor{UserID: testfixtures.ProviderID, TenantID: 2, Role: access.RoleProvider}
	zero := []domain.DayInput{{DayOfWeek: "monday", SlotsTotal: intp(0), IsActive: true}}

	checks := map[string]error{}
	_, checks["set"] = NewSetDays(repo, audit.Nop{}).Execute(ctx, foreign, pair, ScopeScheduler, zero)
	_, checks["self set"] = NewSetDays(repo, audit.Nop{}).Execute(ctx, foreignProvider, pair, ScopeSelf, zero)
	_, checks["list"] = NewListDays(repo).Execute(ctx, foreign, pair, ScopeScheduler)
	_, checks["repair"] = NewRepairSlots(repo, nil, audit.Nop{}, nil).Execute(ctx, foreign, pair)
	_, checks["reserve"] = NewReserveSlot(repo, audit.Nop{}).Execute(ctx, foreign, pair, 1, "monday")
	_, checks["release"] = NewReleaseSlot(repo, audit.Nop{}).Execute(ctx, foreign, pair, 1, "monday")

	for name, err := range checks {
		if !httperr.IsBusiness(err, "site_not_found") || httperr.KindOf(err) != httperr.KindNotFound {
			t.Fatalf("%s: expected site_not_found, got %v", name, err)
		}
	}

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsTotal != 5 || got.SlotsAvailable != 5 {
		t.Fatalf("cell changed: %+v", got)
	}
}

func TestReserve_RejectsClientHeldOnlyInLegacy(t *testing.T) {
	db, repo := newRepo(t)
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 3, 2)
	legacy := models.LegacySiteClientSlot{SiteID: siteID, ProviderID: testfixtures.ProviderID, ClientID: 4, DayOfWeek: "monday", Active: true}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	_, err := NewReserveSlot(repo, audit.Nop{}).Execute(context.Background(), staff(), pair, 4, "monday")
	if !httperr.IsBusiness(err, "client_already_assigned") {
		t.Fatalf("expected client_already_assigned, got %v", err)
	}

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsAvailable != 2 {
		t.Fatalf("available = %d", got.SlotsAvailable)
	}
}

func TestRepair_MergesLegacyWithoutDoubleCounting(t *testing.T) {
	db, repo := newRepo(t)
	testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 4, 4)
	testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "wednesday", 2, 0)

	reserve(t, repo, 1)

	legacy := []models.LegacySiteClientSlot{
		{SiteID: siteID, ProviderID: testfixtures.ProviderID, ClientID: 1, DayOfWeek: "monday", Active: true},
		{SiteID: siteID, ProviderID: testfixtures.ProviderID, ClientID: 9, DayOfWeek: "monday", Active: true},
		{SiteID: siteID, ProviderID: testfixtures.ProviderID, ClientID: 5, DayOfWeek: "wednesday", Active: false},
	}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	uc := NewRepairSlots(repo, nil, audit.Nop{}, nil)
	first, err := uc.Run(context.Background(), pair)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	want := []domain.DayReport{
		{DayOfWeek: "monday", SlotsTotal: 4, Used: 2, AvailableBefore: 3, AvailableAfter: 2},
		{DayOfWeek: "wednesday", SlotsTotal: 2, Used: 0, AvailableBefore: 0, AvailableAfter: 2},
	}
	if !reflect.DeepEqual(first.Days, want) {
		t.Fatalf("first run = %+v", first.Days)
	}

	second, err := uc.Run(context.Background(), pair)
	if err != nil {
		t.Fatalf("second repair: %v", err)
	}
	for i := range second.Days {
		if second.Days[i].AvailableAfter != first.Days[i].AvailableAfter || second.Days[i].Used != first.Days[i].Used {
			t.Fatalf("repair not idempotent: %+v vs %+v", second.Days[i], first.Days[i])
		}
	}
	if second.RunID == first.RunID {
		t.Fatal("run ids should differ")
	}
}

func TestRepair_ArchiveFailureIsNotFatal(t *testing.T) {
	db, repo := newRepo(t)
	testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "friday", 1, 1)

	report, err := NewRepairSlots(repo, &memoryArchive{err: errors.New("bucket missing")}, audit.Nop{}, nil).Run(context.Background(), pair)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if report.ArchiveKey != "" || len(report.Days) != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRepair_RequiresScheduler(t *testing.T) {
	_, repo := newRepo(t)
	_, err := NewRepairSlots(repo, nil, audit.Nop{}, nil).Execute(context.Background(), provider(), pair)
	if httperr.KindOf(err) != httperr.KindAccessDenied {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestReserveAndRelease(t *testing.T) {
	db, repo := newRepo(t)
	ctx := context.Background()
	cell := testfixtures.SeedCell(t, db, siteID, testfixtures.ProviderID, "monday", 2, 2)

	reserve(t, repo, 1)

	if _, err := NewReserveSlot(repo, audit.Nop{}).Execute(ctx, staff(), pair, 1, "monday"); !httperr.IsBusiness(err, "client_already_assigned") {
		t.Fatalf("duplicate reserve: %v", err)
	}
	if _, err := NewReserveSlot(repo, audit.Nop{}).Execute(ctx, staff(), pair, 2, "tuesday"); !httperr.IsBusiness(err, "day_not_configured") {
		t.Fatalf("unconfigured day: %v", err)
	}

	release := NewReleaseSlot(repo, audit.Nop{})
	out, err := release.Execute(ctx, staff(), pair, 1, "monday")
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if out.SlotsAvailable != 2 {
		t.Fatalf("available after release = %d", out.SlotsAvailable)
	}
	if _, err := release.Execute(ctx, staff(), pair, 1, "monday"); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("second release: %v", err)
	}

	var got models.CapacityCell
	testfixtures.MustReload(t, db, &got, cell.ID)
	if got.SlotsAvailable != 2 {
		t.Fatalf("stored available = %d", got.SlotsAvailable)
	}
}
