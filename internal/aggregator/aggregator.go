package aggregator

import (
	"fmt"

	"newsagg/internal/config"
	"newsagg/internal/index"
	"newsagg/internal/logger"
	"newsagg/internal/models"
	"newsagg/internal/pool"
	"newsagg/pkg/urlutil"
)

// FeedSource parses the feed list and individual feeds.
type FeedSource interface {
	ParseList(location string) ([]models.FeedRef, error)
	ParseFeed(url string) ([]models.Article, error)
}

// DocumentSource fetches and tokenizes article documents.
type DocumentSource interface {
	Tokens(url string) ([]string, error)
}

// Aggregator drives the two-level crawl: one pool of feed workers
// fans each feed out into article tasks on a second, larger pool.
// URLs are deduplicated across the whole crawl and near-duplicate
// articles are merged before the index is populated.
type Aggregator struct {
	crawlog     *logger.CrawlLog
	feeds       FeedSource
	documents   DocumentSource
	feedPool    *pool.Pool
	articlePool *pool.Pool
	seen        *SeenSet
	merger      *Merger
	index       *index.Index
	built       bool
}

// NewAggregator wires an aggregator from its collaborators.
func NewAggregator(cfg *config.PoolsConfig, crawlog *logger.CrawlLog, feeds FeedSource, documents DocumentSource) *Aggregator {
	return &Aggregator{
		crawlog:     crawlog,
		feeds:       feeds,
		documents:   documents,
		feedPool:    pool.NewPool(cfg.FeedWorkers),
		articlePool: pool.NewPool(cfg.ArticleWorkers),
		seen:        NewSeenSet(),
		merger:      NewMerger(),
		index:       index.NewIndex(),
	}
}

// BuildIndex crawls the feed list and builds the inverted index.
// A feed-list failure is fatal and returned; feed and article
// failures are logged and dropped. BuildIndex is not safe for
// concurrent use and runs at most once per Aggregator.
func (a *Aggregator) BuildIndex(feedListURI string) error {
	if a.built {
		return nil
	}
	a.built = true

	a.crawlog.FeedListBegin(feedListURI)

	refs, err := a.feeds.ParseList(feedListURI)
	if err != nil {
		a.crawlog.FeedListFailure(feedListURI, err)

		return fmt.Errorf("feed list %s: %w", feedListURI, err)
	}

	a.crawlog.FeedListEnd(feedListURI)

	for _, ref := range refs {
		a.feedPool.Schedule(func() {
			a.runFeed(ref)
		})
	}

	a.crawlog.AllFeedsScheduled(feedListURI)

	// Feed tasks may still be scheduling article tasks while the
	// feed pool drains; the article pool is waited on second.
	a.feedPool.Wait()
	a.articlePool.Wait()

	entries := a.merger.Drain()
	for _, entry := range entries {
		a.index.Add(entry.Article, entry.Tokens)
	}

	a.crawlog.CrawlEnd(len(entries))

	return nil
}

// Index returns the inverted index. Only meaningful after a
// successful BuildIndex.
func (a *Aggregator) Index() *index.Index {
	return a.index
}

// Close shuts down both pools, quiescing each first.
func (a *Aggregator) Close() {
	a.feedPool.Close()
	a.articlePool.Close()
}

// runFeed is the body of one feed task. It parses the feed, fans its
// articles out onto the article pool, and returns only once every
// article task of this feed has finished.
func (a *Aggregator) runFeed(ref models.FeedRef) {
	if !a.seen.TryAdmit(ref.URL) {
		a.crawlog.FeedSkipped(ref.URL)

		return
	}

	a.crawlog.FeedBegin(ref.URL)

	articles, err := a.feeds.ParseFeed(ref.URL)
	if err != nil {
		a.crawlog.FeedFailure(ref.URL, err)

		return
	}

	// Fan-in barrier: opens after exactly len(articles) signals, or
	// immediately for an empty feed.
	completed := pool.NewSemaphore(1 - len(articles))

	for _, article := range articles {
		a.articlePool.Schedule(func() {
			a.runArticle(article)
			completed.Signal()
		})
	}

	a.crawlog.AllArticlesScheduled(ref.URL)

	completed.Wait()
	a.crawlog.FeedEnd(ref.URL)
}

// runArticle is the body of one article task. It tokenizes the
// document and merges it by (server, title).
func (a *Aggregator) runArticle(article models.Article) {
	if !a.seen.TryAdmit(article.URL) {
		a.crawlog.ArticleSkipped(article)

		return
	}

	server := urlutil.Server(article.URL)

	a.crawlog.ArticleBegin(article)

	tokens, err := a.documents.Tokens(article.URL)
	if err != nil {
		a.crawlog.ArticleFailure(article, err)

		return
	}

	a.merger.Merge(server, article.Title, article, tokens)
}
