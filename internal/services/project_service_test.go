package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"realestate-backend/internal/models"
	"realestate-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProjectStore struct {
	listRows     []models.ProjectSummary
	listTotal    int
	listErr      error
	facetRows    []repositories.ProjectFacetRow
	facetErr     error
	allProjects  []models.Project
	allErr       error
	project      *models.Project
	developer    *models.Developer
	getErr       error
	related      []models.ProjectSummary
	relatedErr   error
	relatedCalls int
	gotExcludeID uuid.UUID
	gotLimit     int
}

func (f *fakeProjectStore) List(ctx context.Context, filter repositories.ListFilter) ([]models.ProjectSummary, int, error) {
	return f.listRows, f.listTotal, f.listErr
}

func (f *fakeProjectStore) FacetRows(ctx context.Context) ([]repositories.ProjectFacetRow, error) {
	return f.facetRows, f.facetErr
}

func (f *fakeProjectStore) ListAll(ctx context.Context, category string) ([]models.Project, error) {
	return f.allProjects, f.allErr
}

func (f *fakeProjectStore) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.project, nil
}

func (f *fakeProjectStore) GetWithDeveloper(ctx context.Context, slug string) (*models.Project, *models.Developer, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	return f.project, f.developer, nil
}

func (f *fakeProjectStore) Related(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.ProjectSummary, error) {
	f.relatedCalls++
	f.gotExcludeID = excludeID
	f.gotLimit = limit
	return f.related, f.relatedErr
}

type fakeAssetsStore struct {
	images    []models.ProjectImage
	imagesErr error
	units     []models.TypicalUnit
	files     []models.ProjectFile
	filesErr  error
	plans     []models.ProjectPaymentPlan
	amenities []models.ProjectAmenity
	places    []models.ProjectNearbyPlace
	parkings  []models.ProjectParking

	mu        sync.Mutex
	callCount int
}

// touch is called from the aggregator's goroutines, so it must be locked.
func (f *fakeAssetsStore) touch() {
	f.mu.Lock()
	f.callCount++
	f.mu.Unlock()
}

func (f *fakeAssetsStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

func (f *fakeAssetsStore) ImagesByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectImage, error) {
	f.touch()
	return f.images, f.imagesErr
}

func (f *fakeAssetsStore) UnitsByProject(ctx context.Context, id uuid.UUID) ([]models.TypicalUnit, error) {
	f.touch()
	return f.units, nil
}

func (f *fakeAssetsStore) FilesByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectFile, error) {
	f.touch()
	return f.files, f.filesErr
}

func (f *fakeAssetsStore) PaymentPlansByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectPaymentPlan, error) {
	f.touch()
	return f.plans, nil
}

func (f *fakeAssetsStore) AmenitiesByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectAmenity, error) {
	f.touch()
	return f.amenities, nil
}

func (f *fakeAssetsStore) NearbyPlacesByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectNearbyPlace, error) {
	f.touch()
	return f.places, nil
}

func (f *fakeAssetsStore) ParkingsByProject(ctx context.Context, id uuid.UUID) ([]models.ProjectParking, error) {
	f.touch()
	return f.parkings, nil
}

func newTestProject() *models.Project {
	return &models.Project{
		ID:        uuid.New(),
		Name:      "Marina Heights",
		Slug:      "marina-heights",
		Featured:  true,
		CreatedAt: time.Now(),
	}
}

func TestDetailNotFound(t *testing.T) {
	store := &fakeProjectStore{getErr: repositories.ErrNotFound}
	assets := &fakeAssetsStore{}
	svc := NewProjectService(store, assets, zap.NewNop())

	detail, err := svc.Detail(context.Background(), "unknown-slug")

	require.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.Nil(t, detail)
	// No child fetch may be attempted when the project does not resolve.
	assert.Equal(t, 0, assets.calls())
	assert.Equal(t, 0, store.relatedCalls)
}

func TestDetailAggregatesChildren(t *testing.T) {
	project := newTestProject()
	dev := &models.Developer{ID: uuid.New(), Name: "Emaar"}
	store := &fakeProjectStore{
		project:   project,
		developer: dev,
		related: []models.ProjectSummary{
			{ID: uuid.New(), Name: "Breez", Slug: "breez"},
		},
	}
	assets := &fakeAssetsStore{
		images: []models.ProjectImage{{ID: uuid.New(), ProjectID: project.ID, ImageURL: "a.jpg"}},
		units:  []models.TypicalUnit{{ID: uuid.New(), ProjectID: project.ID, Bedrooms: 2}},
	}
	svc := NewProjectService(store, assets, zap.NewNop())

	detail, err := svc.Detail(context.Background(), "marina-heights")

	require.NoError(t, err)
	assert.Equal(t, project.ID, detail.ID)
	assert.Equal(t, dev, detail.DeveloperInfo)
	assert.Len(t, detail.Images, 1)
	assert.Len(t, detail.TypicalUnits, 1)
	assert.Equal(t, project.ID, store.gotExcludeID)
	assert.Equal(t, 6, store.gotLimit)
	assert.Len(t, detail.RelatedProjects, 1)
}

func TestDetailChildFailureYieldsEmptySlice(t *testing.T) {
	project := newTestProject()
	store := &fakeProjectStore{
		project:    project,
		relatedErr: errors.New("related query failed"),
	}
	assets := &fakeAssetsStore{
		imagesErr: errors.New("images query failed"),
		filesErr:  errors.New("files query failed"),
		amenities: []models.ProjectAmenity{{ID: uuid.New(), ProjectID: project.ID, Name: "Pool"}},
	}
	svc := NewProjectService(store, assets, zap.NewNop())

	detail, err := svc.Detail(context.Background(), "marina-heights")

	// A failing child fetch never fails the aggregation.
	require.NoError(t, err)
	assert.NotNil(t, detail.Images)
	assert.Empty(t, detail.Images)
	assert.NotNil(t, detail.Files)
	assert.Empty(t, detail.Files)
	assert.NotNil(t, detail.RelatedProjects)
	assert.Empty(t, detail.RelatedProjects)
	assert.Len(t, detail.Amenities, 1)
}

func TestDetailEmptyChildrenAreNonNil(t *testing.T) {
	store := &fakeProjectStore{project: newTestProject()}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	detail, err := svc.Detail(context.Background(), "marina-heights")

	require.NoError(t, err)
	assert.NotNil(t, detail.Images)
	assert.NotNil(t, detail.TypicalUnits)
	assert.NotNil(t, detail.Files)
	assert.NotNil(t, detail.PaymentPlans)
	assert.NotNil(t, detail.PaymentPlanGroups)
	assert.NotNil(t, detail.Amenities)
	assert.NotNil(t, detail.NearbyPlaces)
	assert.NotNil(t, detail.Parkings)
	assert.NotNil(t, detail.RelatedProjects)
}

func TestDetailGroupsPaymentPlans(t *testing.T) {
	project := newTestProject()
	store := &fakeProjectStore{project: project}
	assets := &fakeAssetsStore{
		plans: []models.ProjectPaymentPlan{
			{PlanName: "60/40", Milestone: "Booking", DisplayOrder: 1},
			{PlanName: "60/40", Milestone: "Handover", DisplayOrder: 2},
			{PlanName: "80/20", Milestone: "Booking", DisplayOrder: 1},
		},
	}
	svc := NewProjectService(store, assets, zap.NewNop())

	detail, err := svc.Detail(context.Background(), "marina-heights")

	require.NoError(t, err)
	require.Len(t, detail.PaymentPlanGroups, 2)
	assert.Equal(t, "60/40", detail.PaymentPlanGroups[0].PlanName)
	assert.Len(t, detail.PaymentPlanGroups[0].Milestones, 2)
	assert.Equal(t, "80/20", detail.PaymentPlanGroups[1].PlanName)
	assert.Len(t, detail.PaymentPlanGroups[1].Milestones, 1)
}

func TestGroupPaymentPlansFirstSeenOrder(t *testing.T) {
	groups := GroupPaymentPlans([]models.ProjectPaymentPlan{
		{PlanName: "B", Milestone: "m1"},
		{PlanName: "A", Milestone: "m2"},
		{PlanName: "B", Milestone: "m3"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].PlanName)
	assert.Equal(t, []string{"m1", "m3"}, []string{groups[0].Milestones[0].Milestone, groups[0].Milestones[1].Milestone})
	assert.Equal(t, "A", groups[1].PlanName)
}

func TestRelatedResolvesSlug(t *testing.T) {
	project := newTestProject()
	store := &fakeProjectStore{project: project}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	related, err := svc.Related(context.Background(), "marina-heights")

	require.NoError(t, err)
	assert.NotNil(t, related)
	assert.Empty(t, related)
	assert.Equal(t, project.ID, store.gotExcludeID)
	assert.Equal(t, 6, store.gotLimit)
}

func TestRelatedUnknownSlug(t *testing.T) {
	store := &fakeProjectStore{getErr: repositories.ErrNotFound}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	_, err := svc.Related(context.Background(), "unknown-slug")

	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.Equal(t, 0, store.relatedCalls)
}

func TestListPage(t *testing.T) {
	dubai := "Dubai"
	marina := "Marina"
	villa := "Villa"
	apartment := "Apartment"
	onSale := "On Sale"
	store := &fakeProjectStore{
		listRows:  []models.ProjectSummary{{Name: "Marina Heights"}},
		listTotal: 14,
		facetRows: []repositories.ProjectFacetRow{
			{Location: &dubai, Category: &villa, Status: &onSale},
			{Location: &marina, Category: &apartment, Status: &onSale},
			{Location: &dubai, Category: &villa, Status: nil},
		},
	}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	page, err := svc.ListPage(context.Background(), ListParams{Page: 1, PerPage: 12, Sort: "default"})

	require.NoError(t, err)
	assert.Equal(t, 14, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Projects, 1)
	assert.Equal(t, []string{"Dubai", "Marina"}, page.FilterOptions.Locations)
	assert.Equal(t, []string{"Villa", "Apartment"}, page.FilterOptions.Categories)
	assert.Equal(t, []string{"On Sale"}, page.FilterOptions.Statuses)
}

func TestListPageFacetFailureDegrades(t *testing.T) {
	store := &fakeProjectStore{
		listRows:  []models.ProjectSummary{{Name: "Marina Heights"}},
		listTotal: 1,
		facetErr:  errors.New("facet scan failed"),
	}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	page, err := svc.ListPage(context.Background(), ListParams{Page: 1, PerPage: 12})

	// The facet scan never blocks the listing itself.
	require.NoError(t, err)
	assert.Len(t, page.Projects, 1)
	assert.Equal(t, []string{}, page.FilterOptions.Locations)
	assert.Equal(t, []string{}, page.FilterOptions.Categories)
	assert.Equal(t, []string{}, page.FilterOptions.Statuses)
}

func TestListPageEmptyRowsNonNil(t *testing.T) {
	store := &fakeProjectStore{}
	svc := NewProjectService(store, &fakeAssetsStore{}, zap.NewNop())

	page, err := svc.ListPage(context.Background(), ListParams{Page: 99, PerPage: 12})

	require.NoError(t, err)
	assert.NotNil(t, page.Projects)
	assert.Empty(t, page.Projects)
}

func TestAllNonNil(t *testing.T) {
	svc := NewProjectService(&fakeProjectStore{}, &fakeAssetsStore{}, zap.NewNop())

	projects, err := svc.All(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}
