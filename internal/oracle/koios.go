package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const defaultKoiosBaseURL = "https://api.koios.rest/api/v1"

const cacheSize = 4096

// KoiosLookup queries the Koios REST API for stake-address activity,
// caching answers so repeated candidates (the driver already de-duplicates
// by address, but a caller composing multiple searches may not) don't
// re-issue the same request.
type KoiosLookup struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *lru.Cache
}

// NewKoiosLookup builds a KoiosLookup. apiKey may be empty for the
// unauthenticated, rate-limited tier.
func NewKoiosLookup(apiKey string) (*KoiosLookup, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &KoiosLookup{
		baseURL: defaultKoiosBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}, nil
}

type koiosAccountInfo struct {
	StakeAddress string `json:"stake_address"`
	Status       string `json:"status"`
}

// Check reports whether stakeAddress has any on-chain activity. A
// transport failure or unexpected response is wrapped as a recoverable
// Error with Kind KindUnavailable; callers disable the oracle on receipt.
func (k *KoiosLookup) Check(ctx context.Context, stakeAddress string) (active bool, err error) {
	if v, ok := k.cache.Get(stakeAddress); ok {
		return v.(bool), nil
	}

	body, err := json.Marshal(map[string][]string{"_stake_addresses": {stakeAddress}})
	if err != nil {
		return false, Unavailable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.baseURL+"/account_info", bytes.NewReader(body))
	if err != nil {
		return false, Unavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if k.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+k.apiKey)
	}

	resp, err := k.client.Do(req)
	if err != nil {
		return false, Unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, Unavailable(fmt.Errorf("koios returned status %d", resp.StatusCode))
	}

	var accounts []koiosAccountInfo
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return false, Unavailable(err)
	}

	active = len(accounts) > 0 && accounts[0].Status == "registered"
	k.cache.Add(stakeAddress, active)
	return active, nil
}
