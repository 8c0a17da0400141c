// Package queue carries bulk-edit batches from the API to the worker over
// RabbitMQ.
//
// The API publishes each batch envelope as a persistent JSON message; the
// worker consumes them with manual acknowledgement. A batch whose handler
// fails is rejected without requeueing, matching the no-retry policy of the
// worker: the seller re-submits.
package queue
