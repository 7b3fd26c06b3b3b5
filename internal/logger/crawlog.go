package logger

import "newsagg/internal/models"

// CrawlLog records the fixed event vocabulary of a crawl: feed-list
// download begin/end/failure, per-feed begin/skip/failure/end,
// per-article begin/skip/failure, and overall completion. Logging is
// best-effort and never fails the crawl.
type CrawlLog struct {
	log *Logger
}

// NewCrawlLog creates a crawl event log on top of the given logger.
func NewCrawlLog(log *Logger) *CrawlLog {
	return &CrawlLog{log: log}
}

// FeedListBegin notes that the feed list is about to be downloaded.
func (c *CrawlLog) FeedListBegin(uri string) {
	c.log.Info("feed list download beginning", "uri", uri)
}

// FeedListEnd notes that the feed list downloaded and parsed cleanly.
func (c *CrawlLog) FeedListEnd(uri string) {
	c.log.Info("feed list download complete", "uri", uri)
}

// FeedListFailure notes that the feed list could not be fetched or
// parsed. The crawl cannot proceed past this.
func (c *CrawlLog) FeedListFailure(uri string, err error) {
	c.log.Error("feed list download failed", "uri", uri, "error", err)
}

// FeedBegin notes that a single feed is about to be downloaded.
func (c *CrawlLog) FeedBegin(url string) {
	c.log.Info("feed download beginning", "url", url)
}

// FeedSkipped notes that a feed URL was already seen and is skipped.
func (c *CrawlLog) FeedSkipped(url string) {
	c.log.Info("feed already seen, skipping", "url", url)
}

// FeedFailure notes that a feed could not be fetched or parsed.
// The rest of the crawl is unaffected.
func (c *CrawlLog) FeedFailure(url string, err error) {
	c.log.Warn("feed download failed", "url", url, "error", err)
}

// FeedEnd notes that a feed and all of its articles have completed.
func (c *CrawlLog) FeedEnd(url string) {
	c.log.Info("feed complete", "url", url)
}

// AllFeedsScheduled notes that every feed of the feed list has been
// handed to the feed pool.
func (c *CrawlLog) AllFeedsScheduled(uri string) {
	c.log.Debug("all feeds scheduled", "uri", uri)
}

// AllArticlesScheduled notes that every article of a feed has been
// handed to the article pool.
func (c *CrawlLog) AllArticlesScheduled(url string) {
	c.log.Debug("all articles scheduled for feed", "url", url)
}

// ArticleBegin notes that a single article is about to be downloaded.
func (c *CrawlLog) ArticleBegin(article models.Article) {
	c.log.Debug("article download beginning", "url", article.URL, "title", article.Title)
}

// ArticleSkipped notes that an article URL was already seen and is
// skipped.
func (c *CrawlLog) ArticleSkipped(article models.Article) {
	c.log.Debug("article already seen, skipping", "url", article.URL)
}

// ArticleFailure notes that an article could not be fetched or
// parsed. The rest of the crawl is unaffected.
func (c *CrawlLog) ArticleFailure(article models.Article, err error) {
	c.log.Warn("article download failed", "url", article.URL, "error", err)
}

// CrawlEnd notes that both pools have quiesced and the merged
// articles have been added to the index.
func (c *CrawlLog) CrawlEnd(articles int) {
	c.log.Info("crawl complete", "articles", articles)
}
