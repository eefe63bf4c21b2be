package catalog

const basicJSX = `import { useState } from "react";

function App() {
  const [count, setCount] = useState(0);

  return (
    <div className="flex min-h-screen flex-col items-center justify-center bg-gray-950 text-gray-100">
      <h1 className="text-4xl font-bold tracking-tight">
        Vite + React + Tailwind
      </h1>
      <p className="mt-4 text-gray-400">
        Edit <code className="rounded bg-gray-800 px-1.5 py-0.5">src/App.jsx</code> to get started.
      </p>
      <button
        onClick={() => setCount((c) => c + 1)}
        className="mt-8 rounded-lg bg-indigo-600 px-5 py-2.5 font-medium transition hover:bg-indigo-500"
      >
        count is {count}
      </button>
    </div>
  );
}

export default App;
`

const dashboardJSX = `const stats = [
  { label: "Revenue", value: "$45,231", change: "+20.1%" },
  { label: "Users", value: "2,350", change: "+18.2%" },
  { label: "Sales", value: "12,234", change: "+4.9%" },
  { label: "Active now", value: "573", change: "-2.4%" },
];

function App() {
  return (
    <div className="flex min-h-screen bg-gray-950 text-gray-100">
      <aside className="hidden w-56 flex-col border-r border-gray-800 p-4 sm:flex">
        <span className="mb-6 text-lg font-semibold">Dashboard</span>
        <nav className="flex flex-col gap-1 text-sm">
          {["Overview", "Analytics", "Reports", "Settings"].map((item) => (
            <a
              key={item}
              href="#"
              className="rounded-md px-3 py-2 text-gray-400 transition hover:bg-gray-900 hover:text-gray-100"
            >
              {item}
            </a>
          ))}
        </nav>
      </aside>
      <main className="flex-1 p-6">
        <h1 className="text-2xl font-bold">Overview</h1>
        <div className="mt-6 grid gap-4 sm:grid-cols-2 lg:grid-cols-4">
          {stats.map((stat) => (
            <div
              key={stat.label}
              className="rounded-xl border border-gray-800 bg-gray-900 p-5"
            >
              <p className="text-sm text-gray-400">{stat.label}</p>
              <p className="mt-2 text-2xl font-semibold">{stat.value}</p>
              <p className="mt-1 text-xs text-gray-500">{stat.change} from last month</p>
            </div>
          ))}
        </div>
        <div className="mt-6 rounded-xl border border-gray-800 bg-gray-900 p-5">
          <h2 className="font-semibold">Recent activity</h2>
          <p className="mt-2 text-sm text-gray-400">
            Connect a data source to see activity here.
          </p>
        </div>
      </main>
    </div>
  );
}

export default App;
`

const landingJSX = `const features = [
  {
    title: "Fast by default",
    description: "Instant dev server start and lightning-fast HMR with Vite.",
  },
  {
    title: "Utility-first styling",
    description: "Style directly in your markup with Tailwind CSS.",
  },
  {
    title: "Production ready",
    description: "Optimized builds out of the box, no configuration needed.",
  },
];

function App() {
  return (
    <div className="min-h-screen bg-gray-950 text-gray-100">
      <header className="mx-auto flex max-w-5xl items-center justify-between px-6 py-5">
        <span className="text-lg font-semibold">revite</span>
        <nav className="flex items-center gap-6 text-sm text-gray-400">
          <a href="#features" className="transition hover:text-gray-100">Features</a>
          <a href="#" className="transition hover:text-gray-100">Docs</a>
          <a
            href="#"
            className="rounded-lg bg-indigo-600 px-4 py-2 font-medium text-gray-100 transition hover:bg-indigo-500"
          >
            Get started
          </a>
        </nav>
      </header>
      <main>
        <section className="mx-auto max-w-3xl px-6 py-24 text-center">
          <h1 className="text-5xl font-bold tracking-tight">
            Ship your next idea faster
          </h1>
          <p className="mt-6 text-lg text-gray-400">
            A modern starter powered by Vite, React, and Tailwind CSS. Delete
            this page and start building.
          </p>
          <div className="mt-8 flex justify-center gap-4">
            <a
              href="#"
              className="rounded-lg bg-indigo-600 px-6 py-3 font-medium transition hover:bg-indigo-500"
            >
              Get started
            </a>
            <a
              href="#features"
              className="rounded-lg border border-gray-700 px-6 py-3 font-medium transition hover:bg-gray-900"
            >
              Learn more
            </a>
          </div>
        </section>
        <section id="features" className="mx-auto max-w-5xl px-6 pb-24">
          <div className="grid gap-6 sm:grid-cols-3">
            {features.map((feature) => (
              <div
                key={feature.title}
                className="rounded-xl border border-gray-800 bg-gray-900 p-6"
              >
                <h2 className="font-semibold">{feature.title}</h2>
                <p className="mt-2 text-sm text-gray-400">{feature.description}</p>
              </div>
            ))}
          </div>
        </section>
      </main>
      <footer className="border-t border-gray-800 py-8 text-center text-sm text-gray-500">
        Built with Vite, React, and Tailwind CSS.
      </footer>
    </div>
  );
}

export default App;
`

const blogJSX = `const posts = [
  {
    slug: "hello-world",
    title: "Hello, world",
    date: "2024-01-15",
    excerpt: "The first post on a brand new blog. Replace this with your own writing.",
  },
  {
    slug: "styling-with-tailwind",
    title: "Styling with Tailwind",
    date: "2024-01-22",
    excerpt: "Utility classes keep your styles next to your markup, where you can see them.",
  },
  {
    slug: "why-vite",
    title: "Why Vite",
    date: "2024-02-03",
    excerpt: "A dev server that starts instantly, however large the project grows.",
  },
];

function App() {
  return (
    <div className="min-h-screen bg-gray-950 text-gray-100">
      <header className="mx-auto max-w-2xl px-6 pt-16 pb-10">
        <h1 className="text-3xl font-bold tracking-tight">My Blog</h1>
        <p className="mt-2 text-gray-400">Notes on building things for the web.</p>
      </header>
      <main className="mx-auto max-w-2xl px-6 pb-24">
        <ul className="flex flex-col gap-10">
          {posts.map((post) => (
            <li key={post.slug}>
              <article>
                <time dateTime={post.date} className="text-sm text-gray-500">
                  {post.date}
                </time>
                <h2 className="mt-1 text-xl font-semibold">
                  <a href={"/posts/" + post.slug} className="transition hover:text-indigo-400">
                    {post.title}
                  </a>
                </h2>
                <p className="mt-2 text-gray-400">{post.excerpt}</p>
              </article>
            </li>
          ))}
        </ul>
      </main>
    </div>
  );
}

export default App;
`
