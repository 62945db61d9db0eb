package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/params"
	"github.com/katalvlaran/lvlmaze/policy"
)

func TestNew_AllNames(t *testing.T) {
	names := policy.Names()
	assert.Len(t, names, 7)
	for _, name := range names {
		p, err := policy.New(name, nil)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want any
		err  error
	}{
		{spec: "greedy:seed=12345", want: &policy.Greedy{}},
		{spec: "epsilon-greedy:epsilon=0.2", want: &policy.EpsilonGreedy{}},
		{spec: "decreasing-epsilon:epsilon=1,factor=0.98", want: &policy.DecreasingEpsilon{}},
		{spec: "epsilon-first:n=0", want: &policy.EpsilonFirst{}},
		{spec: "softmax:temperature=0.5,digits=50", want: &policy.Softmax{}},
		{spec: "vdbe:sigma=3", want: &policy.VDBE{}},
		{spec: "boltzmann", err: policy.ErrUnknownPolicy},
		{spec: "greedy:eps=1", err: params.ErrUnknownKey},
		{spec: "softmax:temperature=-1", err: policy.ErrInvalidParameter},
		{spec: "softmax:digits=0", err: policy.ErrInvalidParameter},
		{spec: "vdbe:sigma=x", err: params.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			p, err := policy.Parse(tc.spec)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.want, p)
		})
	}
}
