package optim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/internal/tensor"
)

type cpuOptimizer = Optimizer[float64, *cpu.CPUBackend]

func vec(t *testing.T, values ...float64) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	ts, err := tensor.FromSlice(values, tensor.Shape{len(values)}, cpu.New())
	require.NoError(t, err)
	return ts
}

func TestSGD_Apply(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.1)})

	params := vec(t, 1.0)
	grad := vec(t, 2.0)

	updated, err := opt.Apply(params, grad)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, updated.Data()[0], 1e-12)
	assert.Equal(t, 1, opt.GetTimestep())
}

func TestSGD_UpdateIsScaledNegatedGradient(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.5)})

	delta, err := opt.Update(vec(t, 1.0, -2.0, 4.0))
	require.NoError(t, err)

	expected := []float64{-0.5, 1.0, -2.0}
	for i, want := range expected {
		assert.InDelta(t, want, delta.Data()[i], 1e-12)
	}
}

func TestSGD_Stateless(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.1)})

	// No accumulators, so gradients of different shapes are fine.
	_, err := opt.Update(vec(t, 1.0))
	require.NoError(t, err)
	_, err = opt.Update(vec(t, 1.0, 2.0, 3.0))
	require.NoError(t, err)
	assert.Equal(t, 2, opt.GetTimestep())
}

func TestMomentumSGD_VelocityRecurrence(t *testing.T) {
	opt := MustNewMomentumSGD[float64, *cpu.CPUBackend](MomentumSGDConfig{
		LR:       Fixed(0.1),
		Momentum: 0.9,
	})
	grad := vec(t, 1.0)

	d1, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, d1.Data()[0], 1e-12)

	d2, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.19, d2.Data()[0], 1e-12)
}

func TestMomentumSGD_ZeroMomentumMatchesSGD(t *testing.T) {
	mom := MustNewMomentumSGD[float64, *cpu.CPUBackend](MomentumSGDConfig{LR: Fixed(0.1)})
	sgd := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.1)})

	for i := 0; i < 3; i++ {
		grad := vec(t, float64(i)+0.5)

		dm, err := mom.Update(grad)
		require.NoError(t, err)
		ds, err := sgd.Update(grad)
		require.NoError(t, err)

		assert.InDelta(t, ds.Data()[0], dm.Data()[0], 1e-12)
	}
}

func TestNesterovSGD_LookaheadDeltas(t *testing.T) {
	opt := MustNewNesterovSGD[float64, *cpu.CPUBackend](NesterovSGDConfig{
		LR:       Fixed(0.1),
		Momentum: 0.9,
	})
	grad := vec(t, 1.0)

	d1, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.19, d1.Data()[0], 1e-12)

	d2, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.271, d2.Data()[0], 1e-12)
}

func TestAdaGrad_DeltasShrink(t *testing.T) {
	opt := MustNewAdaGrad[float64, *cpu.CPUBackend](AdaGradConfig{LR: Fixed(0.1)})
	grad := vec(t, 2.0)

	d1, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, d1.Data()[0], 1e-8)

	d2, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.2/math.Sqrt(8), d2.Data()[0], 1e-8)

	// Constant gradients only grow the accumulator, so step magnitudes
	// never increase.
	prev := math.Abs(d2.Data()[0])
	for i := 0; i < 10; i++ {
		d, err := opt.Update(grad)
		require.NoError(t, err)
		cur := math.Abs(d.Data()[0])
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestRMSProp_FirstStep(t *testing.T) {
	opt := MustNewRMSProp[float64, *cpu.CPUBackend](RMSPropConfig{
		LR:  Fixed(0.1),
		Rho: 0.9,
	})

	delta, err := opt.Update(vec(t, 2.0))
	require.NoError(t, err)

	// g_acc = 0.1 * 4 = 0.4
	assert.InDelta(t, -0.2/math.Sqrt(0.4), delta.Data()[0], 1e-8)
}

func TestAdam_FirstStepIsSignedLearningRate(t *testing.T) {
	opt := MustNewAdam[float64, *cpu.CPUBackend](DefaultAdamConfig())

	delta, err := opt.Update(vec(t, 1.0, -3.0))
	require.NoError(t, err)

	// After bias correction the first step is -lr * sign(gradient) up to
	// the epsilon guard.
	assert.InDelta(t, -1e-3, delta.Data()[0], 1e-6)
	assert.InDelta(t, 1e-3, delta.Data()[1], 1e-6)
}

func TestAdam_ZeroBetasReduceToNormalizedGradient(t *testing.T) {
	opt := MustNewAdam[float64, *cpu.CPUBackend](AdamConfig{
		LR:    Fixed(0.1),
		Betas: [2]float64{0, 0},
	})

	// With both betas at zero the moments track the raw gradient and its
	// square with no history, so delta = -lr * grad / (|grad| + eps).
	delta, err := opt.Update(vec(t, 2.0))
	require.NoError(t, err)
	assert.InDelta(t, -0.1, delta.Data()[0], 1e-8)

	delta, err = opt.Update(vec(t, -4.0))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, delta.Data()[0], 1e-8)
}

func TestAdaBelief_FirstStep(t *testing.T) {
	opt := MustNewAdaBelief[float64, *cpu.CPUBackend](DefaultAdaBeliefConfig())

	delta, err := opt.Update(vec(t, 1.0))
	require.NoError(t, err)

	// m = 0.1, m_hat = 1.0, s_hat = (1-0.9)^2 * 1 = 0.81 (plus epsilon),
	// so delta = -lr / 0.9.
	assert.InDelta(t, -1e-3/0.9, delta.Data()[0], 1e-6)
}

func TestAdaBelief_ZeroBetas(t *testing.T) {
	opt := MustNewAdaBelief[float64, *cpu.CPUBackend](AdaBeliefConfig{
		LR:    Fixed(0.1),
		Betas: [2]float64{0, 0},
		Eps:   1.0,
	})

	// beta1 = 0 makes m equal the gradient, so the deviation term vanishes
	// and s is just the epsilon injection: delta = -lr * grad / 2.
	delta, err := opt.Update(vec(t, 2.0))
	require.NoError(t, err)
	assert.InDelta(t, -0.1, delta.Data()[0], 1e-12)
}

func TestScheduleResolvesAtPreIncrementStep(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{
		LR: InverseTimeDecay(0.1),
	})
	grad := vec(t, 1.0)

	assert.InDelta(t, 0.1, opt.GetLR(), 1e-12)

	d1, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, d1.Data()[0], 1e-12)

	assert.InDelta(t, 0.05, opt.GetLR(), 1e-12)

	d2, err := opt.Update(grad)
	require.NoError(t, err)
	assert.InDelta(t, -0.05, d2.Data()[0], 1e-12)
}

func TestAllOptimizers(t *testing.T) {
	newOptimizers := func() map[string]cpuOptimizer {
		lr := Fixed(0.1)
		return map[string]cpuOptimizer{
			"sgd":       MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: lr}),
			"momentum":  MustNewMomentumSGD[float64, *cpu.CPUBackend](MomentumSGDConfig{LR: lr, Momentum: 0.9}),
			"nesterov":  MustNewNesterovSGD[float64, *cpu.CPUBackend](NesterovSGDConfig{LR: lr, Momentum: 0.9}),
			"adagrad":   MustNewAdaGrad[float64, *cpu.CPUBackend](AdaGradConfig{LR: lr}),
			"rmsprop":   MustNewRMSProp[float64, *cpu.CPUBackend](RMSPropConfig{LR: lr, Rho: 0.9}),
			"adam":      MustNewAdam[float64, *cpu.CPUBackend](AdamConfig{LR: lr, Betas: [2]float64{0.9, 0.999}}),
			"adabelief": MustNewAdaBelief[float64, *cpu.CPUBackend](AdaBeliefConfig{LR: lr, Betas: [2]float64{0.9, 0.999}}),
		}
	}

	t.Run("step counter advances once per update", func(t *testing.T) {
		for name, opt := range newOptimizers() {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, 0, opt.GetTimestep())
				for i := 1; i <= 3; i++ {
					_, err := opt.Update(vec(t, 1.0))
					require.NoError(t, err)
					assert.Equal(t, i, opt.GetTimestep())
				}
			})
		}
	})

	t.Run("nil gradient is rejected", func(t *testing.T) {
		for name, opt := range newOptimizers() {
			t.Run(name, func(t *testing.T) {
				_, err := opt.Update(nil)
				assert.ErrorIs(t, err, ErrNilGradient)

				_, err = opt.Apply(vec(t, 1.0), nil)
				assert.ErrorIs(t, err, ErrNilGradient)

				// A rejected update does not advance the counter.
				assert.Equal(t, 0, opt.GetTimestep())
			})
		}
	})

	t.Run("gradient shape change is rejected", func(t *testing.T) {
		for name, opt := range newOptimizers() {
			if name == "sgd" {
				continue // stateless, accepts any shape
			}
			t.Run(name, func(t *testing.T) {
				_, err := opt.Update(vec(t, 1.0, 2.0))
				require.NoError(t, err)

				_, err = opt.Update(vec(t, 1.0, 2.0, 3.0))
				var shapeErr *ShapeMismatchError
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, tensor.Shape{2}, shapeErr.Expected)
				assert.Equal(t, tensor.Shape{3}, shapeErr.Got)
			})
		}
	})

	t.Run("apply rejects mismatched params and gradient", func(t *testing.T) {
		for name, opt := range newOptimizers() {
			t.Run(name, func(t *testing.T) {
				_, err := opt.Apply(vec(t, 1.0, 2.0), vec(t, 1.0))
				var shapeErr *ShapeMismatchError
				assert.ErrorAs(t, err, &shapeErr)
			})
		}
	})

	t.Run("apply leaves params and gradient untouched", func(t *testing.T) {
		for name, opt := range newOptimizers() {
			t.Run(name, func(t *testing.T) {
				params := vec(t, 1.0, -2.0)
				grad := vec(t, 0.5, 0.25)

				updated, err := opt.Apply(params, grad)
				require.NoError(t, err)
				require.NotSame(t, params, updated)

				assert.Equal(t, []float64{1.0, -2.0}, params.Data())
				assert.Equal(t, []float64{0.5, 0.25}, grad.Data())
			})
		}
	})

	t.Run("identical inputs produce identical trajectories", func(t *testing.T) {
		a := newOptimizers()
		b := newOptimizers()
		grads := [][]float64{{1.0, -0.5}, {0.25, 2.0}, {-3.0, 0.125}}

		for name, optA := range a {
			optB := b[name]
			t.Run(name, func(t *testing.T) {
				params1 := vec(t, 0.0, 0.0)
				params2 := vec(t, 0.0, 0.0)
				for _, g := range grads {
					var err error
					params1, err = optA.Apply(params1, vec(t, g...))
					require.NoError(t, err)
					params2, err = optB.Apply(params2, vec(t, g...))
					require.NoError(t, err)
				}
				assert.Equal(t, params1.Data(), params2.Data())
			})
		}
	})
}

func TestApply_NilParams(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.1)})

	_, err := opt.Apply(nil, vec(t, 1.0))
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "params", argErr.Name)
}

func TestFloat32Optimizers(t *testing.T) {
	opt := MustNewAdam[float32, *cpu.CPUBackend](AdamConfig{
		LR:    Fixed(0.1),
		Betas: [2]float64{0.9, 0.999},
	})

	grad, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	delta, err := opt.Update(grad)
	require.NoError(t, err)
	for _, v := range delta.Data() {
		assert.InDelta(t, -0.1, float64(v), 1e-4)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (any, error)
		wantArg string
	}{
		{
			name: "negative fixed lr",
			build: func() (any, error) {
				return NewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(-0.1)})
			},
			wantArg: "lr",
		},
		{
			name: "momentum at one",
			build: func() (any, error) {
				return NewMomentumSGD[float64, *cpu.CPUBackend](MomentumSGDConfig{LR: Fixed(0.1), Momentum: 1.0})
			},
			wantArg: "momentum",
		},
		{
			name: "negative nesterov momentum",
			build: func() (any, error) {
				return NewNesterovSGD[float64, *cpu.CPUBackend](NesterovSGDConfig{LR: Fixed(0.1), Momentum: -0.5})
			},
			wantArg: "momentum",
		},
		{
			name: "rho above one",
			build: func() (any, error) {
				return NewRMSProp[float64, *cpu.CPUBackend](RMSPropConfig{LR: Fixed(0.1), Rho: 1.5})
			},
			wantArg: "rho",
		},
		{
			name: "negative adagrad epsilon",
			build: func() (any, error) {
				return NewAdaGrad[float64, *cpu.CPUBackend](AdaGradConfig{LR: Fixed(0.1), Eps: -1e-8})
			},
			wantArg: "epsilon",
		},
		{
			name: "adam beta1 at one",
			build: func() (any, error) {
				return NewAdam[float64, *cpu.CPUBackend](AdamConfig{LR: Fixed(0.1), Betas: [2]float64{1.0, 0.999}})
			},
			wantArg: "beta1",
		},
		{
			name: "adabelief beta2 above one",
			build: func() (any, error) {
				return NewAdaBelief[float64, *cpu.CPUBackend](AdaBeliefConfig{LR: Fixed(0.1), Betas: [2]float64{0.9, 1.5}})
			},
			wantArg: "beta2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantArg, argErr.Name)
		})
	}
}

func TestMustConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() {
		MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(-1)})
	})
	assert.Panics(t, func() {
		MustNewAdam[float64, *cpu.CPUBackend](AdamConfig{LR: Fixed(0.1), Betas: [2]float64{0.9, 1.0}})
	})
}

func TestNilRateDefaults(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{})
	assert.InDelta(t, DefaultLR, opt.GetLR(), 1e-12)
}

func TestErrNilGradientIsStable(t *testing.T) {
	opt := MustNewSGD[float64, *cpu.CPUBackend](SGDConfig{LR: Fixed(0.1)})
	_, err := opt.Update(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilGradient))
}
