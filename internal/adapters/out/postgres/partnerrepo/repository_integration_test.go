package partnerrepo_test

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/adapters/out/postgres/partnerrepo"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partnerrepo.PartnerDTO{}))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_partners").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	p, err := partner.NewPartner(kernel.NewUUID(), "Asha", "9845012345")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))
	loaded, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))
	suite.Equal("Asha", loaded.Name())
	suite.Equal("9845012345", loaded.Phone())
	suite.True(loaded.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_PersistsDeactivation() {
	ctx := context.Background()
	p, err := partner.NewPartner(kernel.NewUUID(), "Asha", "9845012345")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", p.ID(), p).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	p.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	p, err := partner.NewPartner(kernel.NewUUID(), "Asha", "9845012345")
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	loaded, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal("partner not found", errs.Message(err))
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
