package banxico

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/econosfera/internal/config"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

const dateLayout = "02/01/2006"

// Client handles integration with the Banxico economic information system (SIE)
type Client struct {
	url    string
	token  string
	series string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new Banxico client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:    strings.TrimRight(cfg.BanxicoURL, "/"),
		token:  cfg.BanxicoToken,
		series: cfg.CetesSeries,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// sendRequest fetches the latest observation of the configured series as XML
func (c *Client) sendRequest(ctx context.Context) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/series/%s/datos/oportuno", c.url, c.series)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")
	if c.token != "" {
		req.Header.Set("Bmx-Token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Banxico XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts the most recent observation of the series
func (c *Client) parseXMLResponse(rawBody []byte) (*models.RateSnapshot, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	observations := doc.FindElements(fmt.Sprintf("//serie[@idSerie='%s']/Obs", c.series))
	if len(observations) == 0 {
		return nil, fmt.Errorf("no observations found for series %s", c.series)
	}

	latest := observations[len(observations)-1]
	dateElement := latest.FindElement("./fecha")
	valueElement := latest.FindElement("./dato")
	if dateElement == nil || valueElement == nil {
		return nil, fmt.Errorf("observation is missing fecha or dato")
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(dateElement.Text()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	raw := strings.ReplaceAll(strings.TrimSpace(valueElement.Text()), ",", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate %q: %w", raw, err)
	}

	return &models.RateSnapshot{
		Series:    c.series,
		Date:      date,
		Value:     value,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// GetCetesRate retrieves the latest published 28-day CETES yield in percent
func (c *Client) GetCetesRate(ctx context.Context) (*models.RateSnapshot, error) {
	body, err := c.sendRequest(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := c.parseXMLResponse(body)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Retrieved CETES rate: %.2f%% (%s)", snap.Value, snap.Date.Format("2006-01-02"))
	return snap, nil
}
