package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/models"
	"github.com/yourmoment/yourmoment/pkg/scraper"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

// fakePlatform is the shared state behind the fake myMoment sessions a
// test's Stages hand out. Behavior hooks default to success.
type fakePlatform struct {
	mu       sync.Mutex
	listings map[string][]models.ArticleListing
	fetch    func(articleID string) (*models.ArticleDetail, error)
	post     func(articleID, text string) error

	logins    int
	postCalls []string
}

func (p *fakePlatform) factory() (scraper.Client, error) {
	return &fakeSession{p: p}, nil
}

func (p *fakePlatform) postAttempts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.postCalls...)
}

type fakeSession struct {
	p *fakePlatform
}

func (s *fakeSession) Login(ctx context.Context, username, password string) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	s.p.logins++
	return nil
}

func (s *fakeSession) ListArticles(ctx context.Context, tab string) ([]models.ArticleListing, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	return s.p.listings[tab], nil
}

func (s *fakeSession) FetchArticle(ctx context.Context, articleID string) (*models.ArticleDetail, error) {
	s.p.mu.Lock()
	fetch := s.p.fetch
	s.p.mu.Unlock()
	if fetch != nil {
		return fetch(articleID)
	}
	return &models.ArticleDetail{
		ArticleListing: models.ArticleListing{ID: articleID, Title: "Mein Hund Rex", Author: "Lina"},
		Content:        "Rex ist drei Jahre alt.",
		RawHTML:        "<p>Rex ist drei Jahre alt.</p>",
		ScrapedAt:      time.Now(),
	}, nil
}

func (s *fakeSession) PostComment(ctx context.Context, articleID, text string) error {
	s.p.mu.Lock()
	s.p.postCalls = append(s.p.postCalls, articleID)
	post := s.p.post
	s.p.mu.Unlock()
	if post != nil {
		return post(articleID, text)
	}
	return nil
}

func (s *fakeSession) Logout(ctx context.Context) error {
	return nil
}

// fakeGenerator implements llm.Generator with a pluggable response.
type fakeGenerator struct {
	mu       sync.Mutex
	calls    int
	generate func(req llm.Request) (*llm.Completion, error)
}

func (g *fakeGenerator) Generate(ctx context.Context, settings llm.ProviderSettings, req llm.Request) (*llm.Completion, error) {
	g.mu.Lock()
	g.calls++
	generate := g.generate
	g.mu.Unlock()
	if generate != nil {
		return generate(req)
	}
	return &llm.Completion{
		Text:        "Toller Artikel!",
		ModelName:   settings.ModelName,
		TotalTokens: 42,
		Duration:    10 * time.Millisecond,
	}, nil
}

func testEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	enc, err := crypto.NewEncryptor(key)
	require.NoError(t, err)
	return enc
}

func newTestStages(client *ent.Client, enc *crypto.Encryptor, platform *fakePlatform, gen llm.Generator) *Stages {
	cfg := config.DefaultPipelineConfig()
	cfg.PreparationDelay = 0
	cfg.PostingDelay = 0
	return NewStages(client, cfg, enc, platform.factory, gen)
}

// stageFixtures is the entity graph a stage pass operates on.
type stageFixtures struct {
	userID       string
	credentialID string
	templateID   string
	providerID   string
	processID    string
}

func createStageFixtures(t *testing.T, client *ent.Client, enc *crypto.Encryptor, mutate ...func(*ent.MonitoringProcessCreate)) stageFixtures {
	t.Helper()
	ctx := context.Background()

	password, err := enc.Encrypt("geheim123")
	require.NoError(t, err)
	apiKey, err := enc.Encrypt("sk-test")
	require.NoError(t, err)

	user, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.ch").
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	cred, err := client.UpstreamCredential.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetDisplayName("Klasse 4a").
		SetUsername("klasse4a").
		SetPasswordEncrypted(password).
		Save(ctx)
	require.NoError(t, err)

	tmpl, err := client.PromptTemplate.Create().
		SetID(uuid.New().String()).
		SetOwnerUserID(user.ID).
		SetName("Standard").
		SetSystemPrompt("Du bist ein freundlicher Kommentator.").
		SetUserPromptTemplate("Kommentiere: {article_title}").
		Save(ctx)
	require.NoError(t, err)

	provider, err := client.LLMProviderConfig.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetVendorTag("mistral").
		SetModelName("mistral-small-latest").
		SetAPIKeyEncrypted(apiKey).
		Save(ctx)
	require.NoError(t, err)

	create := client.MonitoringProcess.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetName("Test").
		SetLlmProviderID(provider.ID).
		SetMaxDurationMinutes(60).
		SetStatus(monitoringprocess.StatusRunning).
		AddCredentialIDs(cred.ID).
		AddTemplateIDs(tmpl.ID)
	for _, m := range mutate {
		m(create)
	}
	process, err := create.Save(ctx)
	require.NoError(t, err)

	return stageFixtures{
		userID:       user.ID,
		credentialID: cred.ID,
		templateID:   tmpl.ID,
		providerID:   provider.ID,
		processID:    process.ID,
	}
}

func createStageRecord(t *testing.T, client *ent.Client, f stageFixtures, articleID string, status workrecord.Status, mutate ...func(*ent.WorkRecordCreate)) *ent.WorkRecord {
	t.Helper()

	create := client.WorkRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(f.processID).
		SetUserID(f.userID).
		SetCredentialID(f.credentialID).
		SetTemplateID(f.templateID).
		SetLlmProviderID(f.providerID).
		SetUpstreamArticleID(articleID).
		SetArticleTitle("Mein Hund Rex").
		SetArticleAuthor("Lina").
		SetArticleURL("/article/" + articleID).
		SetStatus(status)
	for _, m := range mutate {
		m(create)
	}
	record, err := create.Save(context.Background())
	require.NoError(t, err)
	return record
}

func reloadRecord(t *testing.T, client *ent.Client, id string) *ent.WorkRecord {
	t.Helper()
	record, err := client.WorkRecord.Get(context.Background(), id)
	require.NoError(t, err)
	return record
}

func reloadProcess(t *testing.T, client *ent.Client, id string) *ent.MonitoringProcess {
	t.Helper()
	process, err := client.MonitoringProcess.Get(context.Background(), id)
	require.NoError(t, err)
	return process
}

func stageTask(f stageFixtures) *ent.StageTask {
	return &ent.StageTask{ProcessID: f.processID}
}

func TestRunDiscovery_CreatesRecordsAndIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	// Second template: each article gets one record per template.
	tmpl2, err := client.PromptTemplate.Create().
		SetID(uuid.New().String()).
		SetOwnerUserID(f.userID).
		SetName("Variante").
		SetSystemPrompt("").
		SetUserPromptTemplate("{article_excerpt}").
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, client.MonitoringProcess.UpdateOneID(f.processID).
		AddTemplateIDs(tmpl2.ID).
		Exec(ctx))

	platform := &fakePlatform{
		listings: map[string][]models.ArticleListing{
			scraper.DefaultTab: {
				{ID: "a1", Title: "Mein Hund Rex", Author: "Lina"},
				{ID: "a2", Title: "Unser Ausflug", Author: "Ben"},
			},
		},
	}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})

	require.NoError(t, stages.RunDiscovery(ctx, stageTask(f)))

	records, err := client.WorkRecord.Query().
		Where(workrecord.ProcessIDEQ(f.processID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 4, "one record per (article, template)")
	for _, record := range records {
		assert.Equal(t, workrecord.StatusDiscovered, record.Status)
	}

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 4, process.ArticlesDiscovered)

	// A second pass rediscovers the same articles and creates nothing.
	require.NoError(t, stages.RunDiscovery(ctx, stageTask(f)))

	n, err := client.WorkRecord.Query().
		Where(workrecord.ProcessIDEQ(f.processID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	process = reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 4, process.ArticlesDiscovered, "counter only counts new records")
}

func TestRunDiscovery_DeduplicatesAcrossTabs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc, func(c *ent.MonitoringProcessCreate) {
		c.SetTabFilters([]string{"alle", "klasse-7"})
	})

	shared := models.ArticleListing{ID: "a1", Title: "Mein Hund Rex", Author: "Lina"}
	platform := &fakePlatform{
		listings: map[string][]models.ArticleListing{
			"alle":     {shared},
			"klasse-7": {shared, {ID: "a2", Title: "Unser Ausflug", Author: "Ben"}},
		},
	}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})

	require.NoError(t, stages.RunDiscovery(ctx, stageTask(f)))

	n, err := client.WorkRecord.Query().
		Where(workrecord.ProcessIDEQ(f.processID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "an article on two tabs yields one record")
}

func TestRunPreparation_SnapshotsContentAndFailsBrokenFetches(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	good := createStageRecord(t, client.Client, f, "a1", workrecord.StatusDiscovered)
	broken := createStageRecord(t, client.Client, f, "a2", workrecord.StatusDiscovered, func(c *ent.WorkRecordCreate) {
		c.SetCreatedAt(time.Now().Add(time.Second))
	})

	platform := &fakePlatform{
		fetch: func(articleID string) (*models.ArticleDetail, error) {
			if articleID == "a2" {
				return nil, scraper.Transient(errors.New("HTTP 502"))
			}
			return &models.ArticleDetail{
				ArticleListing: models.ArticleListing{ID: articleID, Title: "Mein Hund Rex", Author: "Lina"},
				Content:        "Rex ist drei Jahre alt.",
				RawHTML:        "<p>Rex ist drei Jahre alt.</p>",
				ScrapedAt:      time.Now(),
			}, nil
		},
	}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})

	require.NoError(t, stages.RunPreparation(ctx, stageTask(f)))

	prepared := reloadRecord(t, client.Client, good.ID)
	assert.Equal(t, workrecord.StatusPrepared, prepared.Status)
	require.NotNil(t, prepared.ArticleContent)
	assert.Equal(t, "Rex ist drei Jahre alt.", *prepared.ArticleContent)
	require.NotNil(t, prepared.ArticleRawHTML)
	assert.NotNil(t, prepared.ArticleScrapedAt)

	// The broken fetch fails its own record and nothing else.
	failed := reloadRecord(t, client.Client, broken.ID)
	assert.Equal(t, workrecord.StatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "HTTP 502")
	assert.NotNil(t, failed.FailedAt)

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 1, process.ArticlesPrepared)
	assert.Equal(t, 1, process.ErrorsPreparation)
}

func TestRunGeneration_ComposesPrefixedComment(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusPrepared, func(c *ent.WorkRecordCreate) {
		c.SetArticleContent("Rex ist drei Jahre alt.")
	})

	stages := newTestStages(client.Client, enc, &fakePlatform{}, &fakeGenerator{})
	require.NoError(t, stages.RunGeneration(ctx, stageTask(f)))

	generated := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusGenerated, generated.Status)
	require.NotNil(t, generated.CommentContent)
	assert.Equal(t, config.DefaultCommentPrefix+"Toller Artikel!", *generated.CommentContent)
	require.NotNil(t, generated.AiModelName)
	assert.Equal(t, "mistral-small-latest", *generated.AiModelName)
	require.NotNil(t, generated.GenerationTokens)
	assert.Equal(t, 42, *generated.GenerationTokens)

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 1, process.CommentsGenerated)
}

func TestRunGeneration_TransientFailureKeepsRecordPrepared(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusPrepared)

	gen := &fakeGenerator{
		generate: func(req llm.Request) (*llm.Completion, error) {
			return nil, &llm.TransientError{Err: errors.New("rate limited")}
		},
	}
	stages := newTestStages(client.Client, enc, &fakePlatform{}, gen)
	require.NoError(t, stages.RunGeneration(ctx, stageTask(f)))

	// Still prepared: the next pass retries. The attempt is visible in
	// the retry count, the error message, and the stage error counter.
	reloaded := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusPrepared, reloaded.Status)
	assert.Equal(t, 1, reloaded.RetryCount)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "rate limited")

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 0, process.CommentsGenerated)
	assert.Equal(t, 1, process.ErrorsGeneration)
}

func TestRunGeneration_PermanentFailureFailsRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusPrepared)

	gen := &fakeGenerator{
		generate: func(req llm.Request) (*llm.Completion, error) {
			return nil, errors.New("invalid API key")
		},
	}
	stages := newTestStages(client.Client, enc, &fakePlatform{}, gen)
	require.NoError(t, stages.RunGeneration(ctx, stageTask(f)))

	failed := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "invalid API key")

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 1, process.ErrorsGeneration)
}

func TestRunPosting_PostsAndRecordsMarker(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusGenerated, func(c *ent.WorkRecordCreate) {
		c.SetCommentContent(config.DefaultCommentPrefix + "Toller Artikel!")
	})

	platform := &fakePlatform{}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})
	require.NoError(t, stages.RunPosting(ctx, stageTask(f)))

	posted := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusPosted, posted.Status)
	require.NotNil(t, posted.UpstreamCommentID)
	assert.Equal(t, CommentMarker(f.processID, "a1", record.ID), *posted.UpstreamCommentID)
	assert.NotNil(t, posted.PostedAt)

	assert.Equal(t, []string{"a1"}, platform.postAttempts())

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 1, process.CommentsPosted)
}

func TestRunPosting_RefusesCommentWithoutPrefix(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusGenerated, func(c *ent.WorkRecordCreate) {
		c.SetCommentContent("Toller Artikel!")
	})

	platform := &fakePlatform{}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})
	require.NoError(t, stages.RunPosting(ctx, stageTask(f)))

	failed := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusFailed, failed.Status)
	assert.Empty(t, platform.postAttempts(), "the comment never reaches the platform")
}

func TestRunPosting_GenerateOnlySkips(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc, func(c *ent.MonitoringProcessCreate) {
		c.SetGenerateOnly(true)
	})

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusGenerated, func(c *ent.WorkRecordCreate) {
		c.SetCommentContent(config.DefaultCommentPrefix + "Toller Artikel!")
	})

	platform := &fakePlatform{}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})
	require.NoError(t, stages.RunPosting(ctx, stageTask(f)))

	reloaded := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusGenerated, reloaded.Status, "generate-only processes never post")
	assert.Empty(t, platform.postAttempts())
}

func TestRunPosting_TransientFailuresExhaustRetryBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusGenerated, func(c *ent.WorkRecordCreate) {
		c.SetCommentContent(config.DefaultCommentPrefix + "Toller Artikel!")
	})

	platform := &fakePlatform{
		post: func(articleID, text string) error {
			return scraper.Transient(errors.New("HTTP 503"))
		},
	}
	stages := newTestStages(client.Client, enc, platform, &fakeGenerator{})

	// First two passes release the claim and charge the retry budget.
	for pass, wantRetries := range []int{1, 2} {
		require.NoError(t, stages.RunPosting(ctx, stageTask(f)), "pass %d", pass+1)
		reloaded := reloadRecord(t, client.Client, record.ID)
		assert.Equal(t, workrecord.StatusGenerated, reloaded.Status)
		assert.Equal(t, wantRetries, reloaded.RetryCount)
		assert.Nil(t, reloaded.UpstreamCommentID, "released claims leave no marker")
		assert.Nil(t, reloaded.PostedAt)
	}

	// The third failure is terminal.
	require.NoError(t, stages.RunPosting(ctx, stageTask(f)))
	failed := reloadRecord(t, client.Client, record.ID)
	assert.Equal(t, workrecord.StatusFailed, failed.Status)
	assert.Equal(t, 3, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "HTTP 503")

	assert.Len(t, platform.postAttempts(), 3, "one post attempt per pass")

	process := reloadProcess(t, client.Client, f.processID)
	assert.Equal(t, 0, process.CommentsPosted)
	assert.Equal(t, 1, process.ErrorsPosting, "only the terminal failure counts")
}

func TestTransitionRecord_GuardsOnExpectedStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	record := createStageRecord(t, client.Client, f, "a1", workrecord.StatusPrepared)
	stages := newTestStages(client.Client, enc, &fakePlatform{}, &fakeGenerator{})

	// A pass working from a stale snapshot loses the transition.
	ok, err := stages.transitionRecord(ctx, record.ID, workrecord.StatusDiscovered, func(u *ent.WorkRecordUpdate) {
		u.SetStatus(workrecord.StatusFailed)
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, workrecord.StatusPrepared, reloadRecord(t, client.Client, record.ID).Status)

	ok, err = stages.transitionRecord(ctx, record.ID, workrecord.StatusPrepared, func(u *ent.WorkRecordUpdate) {
		u.SetStatus(workrecord.StatusGenerated)
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, workrecord.StatusGenerated, reloadRecord(t, client.Client, record.ID).Status)
}

func testBrokerConfig() *config.BrokerConfig {
	return &config.BrokerConfig{
		WorkerCount:             1,
		PollInterval:            time.Second,
		TaskTimeout:             time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
		StaleTaskThreshold:      2 * time.Minute,
	}
}

func TestCoordinator_SpawnStagesOncePerStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc)

	b := broker.New(client.Client)
	c := NewCoordinator(client.Client, b, config.DefaultPipelineConfig(), testBrokerConfig())

	process := reloadProcess(t, client.Client, f.processID)
	spawned, skipped, err := c.spawnStages(ctx, process)
	require.NoError(t, err)
	assert.Equal(t, 4, spawned, "all four stages get a task")
	assert.Equal(t, 0, skipped)

	process = reloadProcess(t, client.Client, f.processID)
	assert.Len(t, process.StageTaskIds, 4)

	// While the tasks are in flight nothing new is spawned.
	spawned, skipped, err = c.spawnStages(ctx, process)
	require.NoError(t, err)
	assert.Equal(t, 0, spawned)
	assert.Equal(t, 4, skipped)
}

func TestCoordinator_GenerateOnlySkipsPostingQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)
	f := createStageFixtures(t, client.Client, enc, func(c *ent.MonitoringProcessCreate) {
		c.SetGenerateOnly(true)
	})

	b := broker.New(client.Client)
	c := NewCoordinator(client.Client, b, config.DefaultPipelineConfig(), testBrokerConfig())

	process := reloadProcess(t, client.Client, f.processID)
	spawned, _, err := c.spawnStages(ctx, process)
	require.NoError(t, err)
	assert.Equal(t, 3, spawned, "no posting task for generate-only")

	process = reloadProcess(t, client.Client, f.processID)
	assert.NotContains(t, process.StageTaskIds, "posting")
}

func TestEnforcer_StopsExpiredProcess(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	enc := testEncryptor(t)

	expired := createStageFixtures(t, client.Client, enc, func(c *ent.MonitoringProcessCreate) {
		c.SetStartedAt(time.Now().Add(-2 * time.Hour)).
			SetExpiresAt(time.Now().Add(-time.Minute))
	})
	alive := createStageFixtures(t, client.Client, enc, func(c *ent.MonitoringProcessCreate) {
		c.SetStartedAt(time.Now()).
			SetExpiresAt(time.Now().Add(time.Hour))
	})

	b := broker.New(client.Client)
	c := NewCoordinator(client.Client, b, config.DefaultPipelineConfig(), testBrokerConfig())
	for _, f := range []stageFixtures{expired, alive} {
		process := reloadProcess(t, client.Client, f.processID)
		_, _, err := c.spawnStages(ctx, process)
		require.NoError(t, err)
	}

	e := NewEnforcer(client.Client, b, config.DefaultPipelineConfig())
	e.tick(ctx)

	stopped := reloadProcess(t, client.Client, expired.processID)
	assert.Equal(t, monitoringprocess.StatusStopped, stopped.Status)
	require.NotNil(t, stopped.StopReason)
	assert.Equal(t, StopReasonTimeout, *stopped.StopReason)
	assert.NotNil(t, stopped.StoppedAt)
	assert.Empty(t, stopped.StageTaskIds)

	for _, taskID := range reloadProcess(t, client.Client, alive.processID).StageTaskIds {
		state, err := b.State(ctx, taskID)
		require.NoError(t, err)
		assert.True(t, broker.InFlight(state), "tasks of live processes survive the tick")
	}

	running := reloadProcess(t, client.Client, alive.processID)
	assert.Equal(t, monitoringprocess.StatusRunning, running.Status)
}
