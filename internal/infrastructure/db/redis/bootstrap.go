package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// BootstrapCredential reads the one-time sign-in token an operator may leave
// for the portal. The token is consumed on read.
// Key format: auth:bootstrap:<app_id>
type BootstrapCredential struct {
	client *redis.Client
	key    string
}

// NewBootstrapCredential creates a BootstrapCredential for appID.
func NewBootstrapCredential(client *redis.Client, appID string) *BootstrapCredential {
	return &BootstrapCredential{client: client, key: BootstrapKey(appID)}
}

// BootstrapKey is where the token for appID is expected.
func BootstrapKey(appID string) string {
	return fmt.Sprintf("auth:bootstrap:%s", appID)
}

// Take returns the stored token and deletes it. An absent key yields "".
func (b *BootstrapCredential) Take(ctx context.Context) (string, error) {
	token, err := b.client.GetDel(ctx, b.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("take bootstrap token: %w", err)
	}
	return token, nil
}
