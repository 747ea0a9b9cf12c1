package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	once   sync.Once
	client *resty.Client
)

// Client shared rest client for oracle feed providers
func Client() *resty.Client {
	once.Do(func() {
		client = resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(10 * time.Second)
	})

	return client
}

func Request(ctx context.Context) *resty.Request {
	return Client().R().SetContext(ctx)
}

func ParseResponse(r *resty.Response, obj interface{}) error {
	body := r.Body()
	if !r.IsSuccess() {
		return fmt.Errorf(string(body))
	}

	if obj != nil {
		if err := json.Unmarshal(body, obj); err != nil {
			return err
		}
	}

	return nil
}
