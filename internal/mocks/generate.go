package mocks

//go:generate mockery --name ProductStore --srcpkg github.com/acquisitions-lab/acquisitions/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name UserStore --srcpkg github.com/acquisitions-lab/acquisitions/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
