package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// BlockchainFetcher implements Fetcher using the blockchain.info ticker API,
// which returns the current bitcoin price in every supported currency.
type BlockchainFetcher struct {
	Client    *http.Client
	TickerURL string
}

// NewBlockchainFetcher creates a blockchain.info ticker fetcher.
func NewBlockchainFetcher(tickerURL string, timeout time.Duration, proxyURL string) *BlockchainFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BlockchainFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		TickerURL: tickerURL,
	}
}

func (f *BlockchainFetcher) Name() string { return "blockchain.info" }

// tickerEntry is one currency's quote in the ticker response.
type tickerEntry struct {
	FifteenMin float64 `json:"15m"`
	Last       float64 `json:"last"`
	Buy        float64 `json:"buy"`
	Sell       float64 `json:"sell"`
	Symbol     string  `json:"symbol"`
}

func (f *BlockchainFetcher) FetchLast(currencies []string) (map[string]float64, error) {
	req, err := http.NewRequest("GET", f.TickerURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticker fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ticker read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticker: status %d, body: %s", resp.StatusCode, string(body))
	}

	var ticker map[string]tickerEntry
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, fmt.Errorf("ticker decode: %w", err)
	}

	last := make(map[string]float64, len(currencies))
	for _, code := range currencies {
		entry, ok := ticker[code]
		if !ok {
			return nil, fmt.Errorf("ticker: currency %s missing from response", code)
		}
		last[code] = entry.Last
	}
	return last, nil
}
