/*
Package mocks will have all the mocks of the application.
*/
package mocks // import "github.com/spotahome/redis-sentinel-config/mocks"

// PropertySource mocks
//go:generate mockery -output ./sentinel -dir ../sentinel -name PropertySource
