// Package config loads the bulk editor's settings.
//
// Values come from environment variables, optionally seeded from a .env
// file, and fall back to the `default` tags of each section. Nested keys map
// to upper-case variables joined by underscores, so queue.url is read from
// QUEUE_URL and worker.batch_size from WORKER_BATCH_SIZE.
//
// # Configuration Structure
//
//   - Server: port, API key, body limit and read timeout
//   - Database: driver (mysql or sqlite) and connection details
//   - Storage: MinIO credentials and the image bucket
//   - Log: level and format
//   - Queue: RabbitMQ URL, queue name and prefetch
//   - Worker: batch size, concurrency and stock rules
//   - Taxonomy: catalog cache lifetime
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Queue.Name)
package config
