package middleware

// ContextKeyRequestID stores the per-request identifier on the echo context.
const ContextKeyRequestID = "request_id"

const headerXRequestID = "X-Request-ID"
