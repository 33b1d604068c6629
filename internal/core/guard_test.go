package core_test

import (
	"feedback/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = DescribeTable("Authorize",
	func(who core.Identity, owner string, expected error) {
		err := core.Authorize(who, owner)
		if expected == nil {
			Expect(err).NotTo(HaveOccurred())
			return
		}
		Expect(err).To(MatchError(expected))
	},
	Entry("owner", core.Identity{Username: "alice"}, "alice", nil),
	Entry("other user", core.Identity{Username: "bob"}, "alice", core.ErrUnauthorized),
	Entry("anonymous", core.Identity{}, "alice", core.ErrUnauthenticated),
	Entry("anonymous against empty owner", core.Identity{}, "", core.ErrUnauthenticated),
	Entry("case differs", core.Identity{Username: "Alice"}, "alice", core.ErrUnauthorized),
)
