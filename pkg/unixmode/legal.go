package unixmode

// LegalNotice provides license notices for unixmode itself and any third-party
// dependencies.
const LegalNotice = `unixmode

Copyright (c) 2021 unixmode authors

Licensed under the terms of the MIT License. A copy of this license can be found
online at https://opensource.org/licenses/MIT.


================================================================================
unixmode depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go sys subrepository.

https://golang.org/
https://github.com/golang/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version).

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>

Used under the terms of the 2-Clause BSD License.

--------------------------------------------------------------------------------

Cobra and pflag

https://github.com/spf13/cobra
https://github.com/spf13/pflag

Copyright 2013 Steve Francia <spf@spf13.com>
Copyright (c) 2012 Alex Ogier. All rights reserved.
Copyright (c) 2012 The Go Authors. All rights reserved.

Used under the terms of the Apache License, Version 2.0 (Cobra) and the
3-Clause BSD License (pflag).

--------------------------------------------------------------------------------

color, go-colorable, and go-isatty

https://github.com/fatih/color
https://github.com/mattn/go-colorable
https://github.com/mattn/go-isatty

Copyright (c) 2013 Fatih Arslan
Copyright (c) 2016 Yasuhiro Matsumoto
Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Copyright (c) 2014 Bob Matcuk

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008 Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

yaml

https://github.com/go-yaml/yaml

Copyright 2011-2016 Canonical Ltd.

Used under the terms of the Apache License, Version 2.0 (and the MIT License
for portions derived from libyaml).
`
