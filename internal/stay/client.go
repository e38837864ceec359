package stay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// stayLength is the assumed stay when computing check-in/check-out
// dates for the upstream hotel search.
const stayLength = 7 * 24 * time.Hour

// Client queries an external hotel-search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a hotel-search client. The API key is sent with
// every request in the X-API-Key header.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
}

// upstreamHotel mirrors the hotel-search endpoint's response shape.
type upstreamHotel struct {
	HotelID string `json:"hotel_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Location struct {
		City    string `json:"city"`
		Address string `json:"address"`
	} `json:"location"`
	Price struct {
		Amount float64 `json:"amount"`
	} `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	BookingURL  string   `json:"booking_url"`
}

type searchResponse struct {
	Result []upstreamHotel `json:"result"`
}

// Search fetches accommodations for a destination. Check-in is today,
// check-out seven days from now, two adults, ISO dates.
func (c *Client) Search(ctx context.Context, destination string) ([]Accommodation, error) {
	checkin := c.now()
	checkout := checkin.Add(stayLength)

	u, err := url.Parse(c.baseURL + "/hotels/search")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("checkin_date", checkin.Format("2006-01-02"))
	q.Set("checkout_date", checkout.Format("2006-01-02"))
	q.Set("adults_number", "2")
	q.Set("dest_id", destination)
	q.Set("dest_type", "city")
	q.Set("order_by", "popularity")
	q.Set("filter_by_currency", "USD")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	accommodations := make([]Accommodation, 0, len(payload.Result))
	for _, h := range payload.Result {
		accommodations = append(accommodations, fromUpstream(h))
	}
	return accommodations, nil
}

func fromUpstream(h upstreamHotel) Accommodation {
	acc := Accommodation{
		ID:          h.HotelID,
		Name:        h.Name,
		Type:        h.Type,
		Location:    h.Location.City + ", " + h.Location.Address,
		Price:       "$" + strconv.Itoa(int(h.Price.Amount+0.5)) + "/night",
		Rating:      h.Rating,
		Amenities:   h.Amenities,
		Description: h.Description,
		BookingURL:  h.BookingURL,
	}
	if acc.Type == "" {
		acc.Type = "Hotel"
	}
	if acc.Description == "" {
		acc.Description = "No description available"
	}
	if len(h.Images) > 0 {
		acc.Image = h.Images[0]
	}
	return acc
}
