package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralForbiddenError represents a generic forbidden error.
	GeneralForbiddenError ErrorCode = "general_forbidden_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ErrInvalidAmount represents a non-positive or non-finite quantity or price.
	ErrInvalidAmount ErrorCode = "invalid_amount"
	// ErrInsufficientLiquidity represents a buy that would drain the market's pool.
	ErrInsufficientLiquidity ErrorCode = "insufficient_liquidity"
	// ErrInsufficientBalance represents a trade exceeding the user's settlement balance.
	ErrInsufficientBalance ErrorCode = "insufficient_balance"
	// ErrInsufficientHolding represents a trade exceeding the user's token holding.
	ErrInsufficientHolding ErrorCode = "insufficient_holding"
	// ErrMarketExists represents an attempt to tokenize content that already has a market.
	ErrMarketExists ErrorCode = "market_already_exists"
	// ErrOrderNotPending represents a mutation attempt on an order in a terminal state.
	ErrOrderNotPending ErrorCode = "order_not_pending"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
	// RedisSetNXError represents an error when setting a value in Redis with SetNX.
	RedisSetNXError ErrorCode = "redis_setnx_error"

	// LockAcquireError represents an error while acquiring a market settlement lock.
	LockAcquireError ErrorCode = "lock_acquire_error"
	// LockReleaseError represents an error while releasing a market settlement lock.
	LockReleaseError ErrorCode = "lock_release_error"
)
