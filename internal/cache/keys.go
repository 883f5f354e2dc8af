package cache

import (
	"fmt"
	"time"
)

const (
	userKeyPrefix    = "user:%d"
	postKeyPrefix    = "post:%d"
	productKeyPrefix = "product:%d"
)

const (
	UserTTL    = 5 * time.Minute
	PostTTL    = 30 * time.Minute
	ProductTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func ProductKey(productID uint) string {
	return fmt.Sprintf(productKeyPrefix, productID)
}
