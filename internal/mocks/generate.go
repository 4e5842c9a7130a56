package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Feed --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename feed_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Feed --dir ../domain/livematch --output domain/livematch --outpkg livematchmock --filename feed_mock.go
