package redis

// Key prefixes namespace session data in Redis
const keyPrefix = "bingo:"

func sessionKey(token string) string {
	return keyPrefix + "session:" + token
}
