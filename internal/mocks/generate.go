package mocks

//go:generate mockery --name RecordStore --srcpkg github.com/insightchat/analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name RecordWriter --srcpkg github.com/insightchat/analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
